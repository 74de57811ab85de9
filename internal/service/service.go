// Package service runs finalized catalog requests through a transport and
// folds every outcome into a result.Result.
//
// A request that fails local validation never reaches the transport; its
// *rules.BuildValidationError is returned as the second value and the
// Result is nil. The same holds for ErrNoCoverArt. Every other outcome, including transport faults and
// cancellation, arrives as a Result with a nil error.
//
// Calls are independent: there is no retry, cache or deduplication, and a
// Service is safe for concurrent use as long as its Invoker is.
package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/lookup"
	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/result"
	"github.com/roach88/brainz/internal/rules"
	"github.com/roach88/brainz/internal/transport"
)

// Operation labels used for logging and metrics.
const (
	OpSearch   = string(rules.OpSearch)
	OpLookup   = string(rules.OpLookup)
	OpBrowse   = string(rules.OpBrowse)
	OpCall     = "call"
	OpCoverArt = "coverart"
)

// ErrNoCoverArt is returned by cover art calls on a Service built without
// WithCoverArt.
var ErrNoCoverArt = errors.New("service: no cover art invoker configured")

// Observer is told about every request the service handles.
type Observer interface {
	ObserveCall(entity, operation, outcome string, d time.Duration)
	ObserveRejected(entity, code string)
}

type nopObserver struct{}

func (nopObserver) ObserveCall(string, string, string, time.Duration) {}
func (nopObserver) ObserveRejected(string, string)                    {}

// Service issues catalog calls.
type Service struct {
	invoker  transport.Invoker
	coverArt transport.Invoker
	tables   *rules.Tables
	logger   *slog.Logger
	observer Observer
	newID    func() string
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver sets the observer notified after each request.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithCoverArt sets the invoker for Cover Art Archive requests, which live
// under a different root than ws/2.
func WithCoverArt(inv transport.Invoker) Option {
	return func(s *Service) {
		s.coverArt = inv
	}
}

// WithRequestIDs replaces the request id generator (UUIDv7 by default).
func WithRequestIDs(next func() string) Option {
	return func(s *Service) {
		if next != nil {
			s.newID = next
		}
	}
}

// WithClock replaces the clock used to time calls.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a service calling through invoker and validating requests
// against tables.
func New(invoker transport.Invoker, tables *rules.Tables, opts ...Option) *Service {
	s := &Service{
		invoker:  invoker,
		tables:   tables,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: nopObserver{},
		newID:    func() string { return uuid.Must(uuid.NewV7()).String() },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tables returns the rule tables requests are validated against.
func (s *Service) Tables() *rules.Tables { return s.tables }

// Search finalizes a search request with build and runs it against the
// entity's search endpoint.
func Search[T any](ctx context.Context, s *Service, entity brainz.Entity, build func() (querymap.Map, error)) (result.Result[T], error) {
	return run[T](ctx, s, s.invoker, OpSearch, entity, string(entity), build)
}

// Lookup finalizes a lookup request with build and fetches path, which is
// "<entity>/<mbid>".
func Lookup[T any](ctx context.Context, s *Service, entity brainz.Entity, path string, build func() (querymap.Map, error)) (result.Result[T], error) {
	return run[T](ctx, s, s.invoker, OpLookup, entity, path, build)
}

// Browse finalizes a browse request with build and lists entity.
func Browse[T any](ctx context.Context, s *Service, entity brainz.Entity, build func() (querymap.Map, error)) (result.Result[T], error) {
	return run[T](ctx, s, s.invoker, OpBrowse, entity, string(entity), build)
}

// Call runs an already assembled request against path.
func Call[T any](ctx context.Context, s *Service, path string, params querymap.Map) result.Result[T] {
	head, _, _ := strings.Cut(path, "/")
	res, _ := run[T](ctx, s, s.invoker, OpCall, brainz.Entity(head), path, func() (querymap.Map, error) {
		return params, nil
	})
	return res
}

// CoverArt fetches the Cover Art Archive listing of a release or release
// group through the cover art invoker.
func CoverArt[T any](ctx context.Context, s *Service, entity brainz.Entity, mbid string) (result.Result[T], error) {
	if s.coverArt == nil {
		return nil, ErrNoCoverArt
	}
	req := lookup.CoverArt(entity, mbid)
	return run[T](ctx, s, s.coverArt, OpCoverArt, entity, req.Path(), req.Finalize)
}

func run[T any](ctx context.Context, s *Service, inv transport.Invoker, op string, entity brainz.Entity, path string, build func() (querymap.Map, error)) (result.Result[T], error) {
	params, err := build()
	if err != nil {
		code := rules.ValidationCode(err)
		if rules.IsValidationError(err) {
			s.observer.ObserveRejected(string(entity), code)
		}
		s.logger.Debug("request rejected",
			"entity", entity,
			"operation", op,
			"code", code,
			"error", err)
		return nil, err
	}

	id := s.newID()
	start := s.now()
	res := result.Unify(ctx, func(ctx context.Context) (int, []byte, error) {
		resp, err := inv.Invoke(ctx, path, params)
		return resp.Status, resp.Body, err
	}, result.JSON[T])
	elapsed := s.now().Sub(start)

	outcome := res.Kind().String()
	s.observer.ObserveCall(string(entity), op, outcome, elapsed)

	attrs := []any{
		"request_id", id,
		"entity", entity,
		"operation", op,
		"path", path,
		"outcome", outcome,
		"duration", elapsed,
	}
	if cause := result.Err(res); cause != nil {
		attrs = append(attrs, "error", cause)
	}
	s.logger.Debug("catalog call", attrs...)
	return res, nil
}
