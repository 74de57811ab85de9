// Package querymap assembles the ordered request parameters sent with a
// search, lookup or browse request.
//
// Key order is fixed: the primary key ("query" for searches, the browse
// target for browses), then "inc", "status" and "type", then "limit" and
// "offset". Absent keys are omitted, never sent empty.
package querymap

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/brainz/internal/brainz"
	"github.com/roach88/brainz/internal/rules"
)

// Parameter keys.
const (
	KeyQuery   = "query"
	KeyInclude = "inc"
	KeyStatus  = "status"
	KeyType    = "type"
	KeyLimit   = "limit"
	KeyOffset  = "offset"
)

// Param is one key/value pair.
type Param struct {
	Key   string
	Value string
}

// Map is an immutable ordered parameter set.
type Map struct {
	params []Param
}

// Keys returns the keys in order.
func (m Map) Keys() []string {
	keys := make([]string, len(m.params))
	for i, p := range m.params {
		keys[i] = p.Key
	}
	return keys
}

// Params returns a copy of the pairs in order.
func (m Map) Params() []Param {
	return slices.Clone(m.params)
}

// Get returns the value of key.
func (m Map) Get(key string) (string, bool) {
	for _, p := range m.params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Len returns the number of parameters.
func (m Map) Len() int { return len(m.params) }

// Encode URL-encodes the parameters in key order. url.Values.Encode sorts
// keys, so it is not used here.
func (m Map) Encode() string {
	var b strings.Builder
	for i, p := range m.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Equal reports whether both maps hold the same pairs in the same order.
func (m Map) Equal(o Map) bool {
	return slices.Equal(m.params, o.params)
}

// String renders the map for logs.
func (m Map) String() string {
	parts := make([]string, len(m.params))
	for i, p := range m.params {
		parts[i] = p.Key + "=" + p.Value
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

type paging struct {
	limit, offset       int
	hasLimit, hasOffset bool
	err                 error
}

// Option sets a paging parameter.
type Option func(*paging)

// Limit sets the page size. n must be positive.
func Limit(n int) Option {
	return func(p *paging) {
		if n <= 0 {
			p.fail(rules.Invalid(rules.ErrCodeInvalidLimit, "", "limit must be positive, got %d", n))
			return
		}
		p.limit, p.hasLimit = n, true
	}
}

// Offset sets the page start. n must not be negative.
func Offset(n int) Option {
	return func(p *paging) {
		if n < 0 {
			p.fail(rules.Invalid(rules.ErrCodeInvalidOffset, "", "offset must not be negative, got %d", n))
			return
		}
		p.offset, p.hasOffset = n, true
	}
}

// Paging converts optional values to options; nil means absent.
func Paging(limit, offset *int) []Option {
	var opts []Option
	if limit != nil {
		opts = append(opts, Limit(*limit))
	}
	if offset != nil {
		opts = append(opts, Offset(*offset))
	}
	return opts
}

func (p *paging) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Builder accumulates parameters in call order.
type Builder struct {
	params []Param
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Set appends key=value. Empty values are skipped.
func (b *Builder) Set(key, value string) *Builder {
	if value != "" {
		b.params = append(b.params, Param{Key: key, Value: value})
	}
	return b
}

// Modifiers appends inc, status and type in that order.
func (b *Builder) Modifiers(m brainz.Modifiers) *Builder {
	return b.Set(KeyInclude, m.IncludeParam()).
		Set(KeyStatus, m.StatusParam()).
		Set(KeyType, m.TypeParam())
}

// Build appends paging and returns the Map.
func (b *Builder) Build(opts ...Option) (Map, error) {
	var p paging
	for _, opt := range opts {
		opt(&p)
	}
	if p.err != nil {
		return Map{}, p.err
	}

	params := slices.Clone(b.params)
	if p.hasLimit {
		params = append(params, Param{Key: KeyLimit, Value: strconv.Itoa(p.limit)})
	}
	if p.hasOffset {
		params = append(params, Param{Key: KeyOffset, Value: strconv.Itoa(p.offset)})
	}
	return Map{params: params}, nil
}

// Assemble combines a rendered query with paging.
func Assemble(rendered string, opts ...Option) (Map, error) {
	if strings.TrimSpace(rendered) == "" {
		return Map{}, rules.Invalid(rules.ErrCodeEmptyQuery, "", "query must not be empty")
	}
	return NewBuilder().Set(KeyQuery, rendered).Build(opts...)
}
