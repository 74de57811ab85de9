package testutil

import (
	"context"
	"sync"

	"github.com/roach88/brainz/internal/querymap"
	"github.com/roach88/brainz/internal/transport"
)

// Call is one recorded invocation.
type Call struct {
	Path   string
	Params querymap.Map
}

// Query returns the "query" parameter of the call.
func (c Call) Query() string {
	q, _ := c.Params.Get(querymap.KeyQuery)
	return q
}

// FakeInvoker is a transport.Invoker that records calls and replies from a
// programmed handler.
//
// Thread-safety: all methods are safe for concurrent use.
type FakeInvoker struct {
	mu      sync.Mutex
	calls   []Call
	handler func(ctx context.Context, path string, params querymap.Map) (transport.Response, error)
}

var _ transport.Invoker = (*FakeInvoker)(nil)

// NewFakeInvoker returns an invoker answering every call with 200 and "{}".
func NewFakeInvoker() *FakeInvoker {
	f := &FakeInvoker{}
	f.Respond(200, "{}")
	return f
}

// Respond answers every later call with status and body.
func (f *FakeInvoker) Respond(status int, body string) *FakeInvoker {
	return f.Handle(func(context.Context, string, querymap.Map) (transport.Response, error) {
		return transport.Response{Status: status, Body: []byte(body)}, nil
	})
}

// Fail answers every later call with err.
func (f *FakeInvoker) Fail(err error) *FakeInvoker {
	return f.Handle(func(context.Context, string, querymap.Map) (transport.Response, error) {
		return transport.Response{}, err
	})
}

// Handle installs a custom handler.
func (f *FakeInvoker) Handle(h func(ctx context.Context, path string, params querymap.Map) (transport.Response, error)) *FakeInvoker {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handler = h
	return f
}

// Invoke implements transport.Invoker.
func (f *FakeInvoker) Invoke(ctx context.Context, path string, params querymap.Map) (transport.Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Path: path, Params: params})
	h := f.handler
	f.mu.Unlock()
	return h(ctx, path, params)
}

// Calls returns a copy of the recorded calls in order.
func (f *FakeInvoker) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallCount returns the number of recorded calls.
func (f *FakeInvoker) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// Reset forgets recorded calls. The handler is kept.
func (f *FakeInvoker) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}
