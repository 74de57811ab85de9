package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/roach88/brainz/internal/result"
	"github.com/roach88/brainz/internal/rules"
)

// rejected writes a local validation failure and returns its exit error.
func (s *session) rejected(err error) error {
	var ve *rules.BuildValidationError
	if !errors.As(err, &ve) {
		_ = s.out.Error(ErrCodeUsage, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid request", err)
	}

	details := map[string]any{"entity": string(ve.Entity)}
	if ve.Offending != "" {
		details["offending"] = ve.Offending
	}
	if len(ve.Required) > 0 {
		details["requires"] = ve.Required
	}
	_ = s.out.Error(ve.Code, ve.Error(), details)
	return WrapExitError(ExitFailure, "request rejected", err)
}

// failure describes a non-success Result.
type failure struct {
	Code    string
	Message string
	Details map[string]any
}

func describe[T any](res result.Result[T]) *failure {
	return result.Match(res,
		func(T) *failure { return nil },
		func(body result.ErrorBody) *failure {
			return &failure{
				Code:    ErrCodeServiceFail,
				Message: body.Help,
				Details: map[string]any{"error": body.Code},
			}
		},
		func(cause result.Failure) *failure {
			f := &failure{Code: ErrCodeCallFailed, Message: cause.Error()}
			var unknown *result.UnknownHTTPError
			if errors.As(cause, &unknown) {
				f.Details = map[string]any{
					"status": strconv.Itoa(unknown.Status),
					"body":   string(unknown.RawBody),
				}
			}
			return f
		},
		func(cause error) *failure {
			return &failure{Code: ErrCodeCancelled, Message: cause.Error()}
		},
	)
}

// reportRaw writes one Result carrying a raw JSON body.
func (s *session) reportRaw(res result.Result[json.RawMessage]) error {
	if f := describe(res); f != nil {
		_ = s.out.Error(f.Code, f.Message, f.Details)
		return NewExitError(ExitFailure, f.Message)
	}
	body, _ := result.Value(res)
	return s.out.Success(rawBody(body))
}

// rawBody prints as indented JSON in text mode and embeds verbatim in the
// JSON envelope.
type rawBody json.RawMessage

func (b rawBody) MarshalJSON() ([]byte, error) {
	if len(b) == 0 {
		return []byte("null"), nil
	}
	return b, nil
}

func (b rawBody) Text() string {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return string(b)
	}
	return out.String()
}
