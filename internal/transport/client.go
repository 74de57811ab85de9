// Package transport issues ws/2 and Cover Art Archive requests over HTTP.
//
// Non-success statuses are not errors here: the status and body are
// returned as-is and classified by package result. An error means no
// response was received or its body could not be read.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/roach88/brainz/internal/querymap"
)

// Response is a raw service response.
type Response struct {
	Status int
	Body   []byte
}

// Invoker performs one request against the service.
type Invoker interface {
	Invoke(ctx context.Context, path string, params querymap.Map) (Response, error)
}

// Ensure HTTPClient implements Invoker at compile time.
var _ Invoker = (*HTTPClient)(nil)

const (
	DefaultBaseURL      = "https://musicbrainz.org/ws/2/"
	DefaultCoverArtURL  = "https://coverartarchive.org/"
	DefaultTimeout      = 10 * time.Second
	DefaultMaxBodyBytes = 8 << 20
)

// UserAgent identifies the application to the service, which requires a
// meaningful agent with contact information.
type UserAgent struct {
	App     string
	Version string
	Contact string
}

// String renders "app/version ( contact )".
func (ua UserAgent) String() string {
	app := strings.TrimSpace(ua.App)
	if app == "" {
		app = "brainz"
	}
	s := app
	if v := strings.TrimSpace(ua.Version); v != "" {
		s += "/" + v
	}
	if c := strings.TrimSpace(ua.Contact); c != "" {
		s += " ( " + c + " )"
	}
	return s
}

// Options configures an HTTPClient. Zero values select the defaults.
type Options struct {
	BaseURL      string
	UserAgent    UserAgent
	Timeout      time.Duration
	MaxBodyBytes int64
	// HTTP overrides the underlying client, e.g. in tests.
	HTTP *http.Client
}

// HTTPClient talks to the ws/2 API.
type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	timeout   time.Duration
	maxBody   int64
}

// NewHTTPClient builds a client from opts.
func NewHTTPClient(opts Options) (*HTTPClient, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	c := &HTTPClient{
		baseURL:   base,
		http:      opts.HTTP,
		userAgent: opts.UserAgent.String(),
		timeout:   opts.Timeout,
		maxBody:   opts.MaxBodyBytes,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.maxBody <= 0 {
		c.maxBody = DefaultMaxBodyBytes
	}
	return c, nil
}

// BaseURL returns the normalized service root.
func (c *HTTPClient) BaseURL() string { return c.baseURL.String() }

// UserAgent returns the User-Agent header value.
func (c *HTTPClient) UserAgent() string { return c.userAgent }

// Invoke issues GET <base>/<path>?<params>.
func (c *HTTPClient) Invoke(ctx context.Context, path string, params querymap.Map) (Response, error) {
	if c == nil {
		return Response{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: strings.TrimPrefix(path, "/"), RawQuery: params.Encode()}
	reqURL := c.baseURL.ResolveReference(rel)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return Response{}, fmt.Errorf("read response: %w", err)
	}
	if int64(len(body)) > c.maxBody {
		return Response{}, fmt.Errorf("response body exceeds %d bytes", c.maxBody)
	}
	return Response{Status: resp.StatusCode, Body: body}, nil
}

// parseBaseURL defaults the root, adds a scheme when missing, drops query
// and fragment, and guarantees a trailing slash so relative paths resolve
// beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base_url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}
