package result

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorBody is the service's error payload: {"error": ..., "help": ...}.
type ErrorBody struct {
	Code string `json:"error"`
	Help string `json:"help"`
}

// ErrNotDecodable is returned by DecodeErrorBody for any payload that is
// not an error body.
var ErrNotDecodable = errors.New("not an error body")

// DecodeErrorBody parses an error payload. The "error" member is required
// and must be a non-empty string.
func DecodeErrorBody(body []byte) (ErrorBody, error) {
	var raw struct {
		Error *string `json:"error"`
		Help  *string `json:"help"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return ErrorBody{}, fmt.Errorf("%w: %v", ErrNotDecodable, err)
	}
	if raw.Error == nil || *raw.Error == "" {
		return ErrorBody{}, fmt.Errorf("%w: missing error member", ErrNotDecodable)
	}
	eb := ErrorBody{Code: *raw.Error}
	if raw.Help != nil {
		eb.Help = *raw.Help
	}
	return eb, nil
}
