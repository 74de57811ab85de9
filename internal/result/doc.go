// Package result folds the outcome of one service call into a single value.
//
// A call can succeed, fail with a structured error body, fail with a body
// that cannot be understood, fail in transport, or be cancelled. Unify maps
// each of these to exactly one variant of Result:
//
//	2xx, body decodes as T               Success{Value}
//	2xx, body does not decode            Exceptional{*WrappedFailure}
//	non-2xx, body decodes as ErrorBody   Error{Body}
//	non-2xx, body does not decode        Exceptional{*UnknownHTTPError}
//	transport error                      Exceptional{*WrappedFailure}
//	caller's context cancelled or done   Cancelled{Cause}
//
// A panic inside the invocation or the decoder is recovered as a
// WrappedFailure. No raw status or transport error escapes Unify.
//
// # Sealed Interfaces
//
// Result and Failure carry unexported marker methods, so the variant sets
// are closed. Match dispatches over every variant and is the preferred way
// to consume a Result.
package result
