package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Invoke performs one call and returns its status and body. A non-nil
// error means no usable response was received.
type Invoke func(ctx context.Context) (status int, body []byte, err error)

// Decoder converts a success body to T.
type Decoder[T any] func(body []byte) (T, error)

// JSON decodes a success body as JSON.
func JSON[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}

// Unify runs invoke once and folds its outcome into a Result.
func Unify[T any](ctx context.Context, invoke Invoke, decode Decoder[T]) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Exceptional[T]{Cause: &WrappedFailure{Cause: panicCause(p)}}
		}
	}()

	if err := ctx.Err(); err != nil {
		return Cancelled[T]{Cause: err}
	}

	status, body, err := invoke(ctx)
	if err != nil {
		if isCancellation(ctx, err) {
			return Cancelled[T]{Cause: err}
		}
		return Exceptional[T]{Cause: &WrappedFailure{Cause: err}}
	}

	if status >= 200 && status < 300 {
		v, err := decode(body)
		if err != nil {
			return Exceptional[T]{Cause: &WrappedFailure{Cause: err}}
		}
		return Success[T]{Value: v}
	}

	eb, err := DecodeErrorBody(body)
	if err != nil {
		return Exceptional[T]{Cause: &UnknownHTTPError{Status: status, RawBody: body}}
	}
	return Error[T]{Body: eb}
}

func panicCause(p any) error {
	if err, ok := p.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", p)
}

// isCancellation reports whether err stems from the caller's context. A
// transport's own request timeout is a failure, not a cancellation.
func isCancellation(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}
