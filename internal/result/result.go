package result

import (
	"errors"
	"fmt"
)

// Kind identifies a Result variant.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
	KindExceptional
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindExceptional:
		return "exceptional"
	case KindCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of one call. Implementations: Success, Error,
// Exceptional, Cancelled.
type Result[T any] interface {
	Kind() Kind
	isResult(T)
}

// Success carries the decoded response.
type Success[T any] struct {
	Value T
}

func (Success[T]) Kind() Kind { return KindSuccess }
func (Success[T]) isResult(T) {}

// Error carries the structured error reported by the service.
type Error[T any] struct {
	Body ErrorBody
}

func (Error[T]) Kind() Kind { return KindError }
func (Error[T]) isResult(T) {}

// Exceptional carries a failure the service did not describe. Cause is
// never nil.
type Exceptional[T any] struct {
	Cause Failure
}

func (Exceptional[T]) Kind() Kind { return KindExceptional }
func (Exceptional[T]) isResult(T) {}

// Cancelled reports that the caller's context ended before a response was
// handled.
type Cancelled[T any] struct {
	Cause error
}

func (Cancelled[T]) Kind() Kind { return KindCancelled }
func (Cancelled[T]) isResult(T) {}

// Failure is the cause of an Exceptional result: *UnknownHTTPError or
// *WrappedFailure.
type Failure interface {
	error
	failure()
}

// UnknownHTTPError is a non-success response whose body is not an error
// body.
type UnknownHTTPError struct {
	Status  int
	RawBody []byte
}

func (e *UnknownHTTPError) Error() string {
	return fmt.Sprintf("unknown error response: status %d", e.Status)
}

func (*UnknownHTTPError) failure() {}

// WrappedFailure is a transport, decoding or runtime fault.
type WrappedFailure struct {
	Cause error
}

func (e *WrappedFailure) Error() string {
	return "call failed: " + e.Cause.Error()
}

func (e *WrappedFailure) Unwrap() error { return e.Cause }

func (*WrappedFailure) failure() {}

// ResponseError adapts an Error result to the error interface.
type ResponseError struct {
	Body ErrorBody
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("service error %s: %s", e.Body.Code, e.Body.Help)
}

// Value returns the success value and true, or the zero T and false.
func Value[T any](r Result[T]) (T, bool) {
	if s, ok := r.(Success[T]); ok {
		return s.Value, true
	}
	var zero T
	return zero, false
}

// Err returns nil for Success and an error describing any other variant.
// The error of an Error result is a *ResponseError.
func Err[T any](r Result[T]) error {
	switch v := r.(type) {
	case Success[T]:
		return nil
	case Error[T]:
		return &ResponseError{Body: v.Body}
	case Exceptional[T]:
		return v.Cause
	case Cancelled[T]:
		return v.Cause
	case nil:
		return errors.New("nil result")
	default:
		return fmt.Errorf("unexpected result type %T", r)
	}
}

// Match calls the function for r's variant and returns its value.
func Match[T, R any](
	r Result[T],
	onSuccess func(T) R,
	onError func(ErrorBody) R,
	onExceptional func(Failure) R,
	onCancelled func(error) R,
) R {
	switch v := r.(type) {
	case Success[T]:
		return onSuccess(v.Value)
	case Error[T]:
		return onError(v.Body)
	case Exceptional[T]:
		return onExceptional(v.Cause)
	case Cancelled[T]:
		return onCancelled(v.Cause)
	default:
		panic(fmt.Sprintf("result: unexpected variant %T", r))
	}
}
