package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/brainz/internal/brainz"
)

// Validation error codes. Every local, pre-network failure of a builder
// carries one of these.
const (
	ErrCodeMissingCompanion      = "MISSING_COMPANION"
	ErrCodeStatusRequiresInclude = "STATUS_REQUIRES_INCLUDE"
	ErrCodeTypeRequiresInclude   = "TYPE_REQUIRES_INCLUDE"
	ErrCodeUnsupportedInclude    = "UNSUPPORTED_INCLUDE"
	ErrCodeInvalidStatus         = "INVALID_STATUS"
	ErrCodeInvalidType           = "INVALID_TYPE"
	ErrCodeInvalidLimit          = "INVALID_LIMIT"
	ErrCodeInvalidOffset         = "INVALID_OFFSET"
	ErrCodeBuilderFinalized      = "BUILDER_FINALIZED"
	ErrCodeInvalidExpression     = "INVALID_EXPRESSION"
	ErrCodeUnknownField          = "UNKNOWN_FIELD"
	ErrCodeInvalidMbid           = "INVALID_MBID"
	ErrCodeEmptyQuery            = "EMPTY_QUERY"
	ErrCodeUnsupportedEntity     = "UNSUPPORTED_ENTITY"
)

// BuildValidationError reports a request that is known locally to be
// invalid. The service is never contacted for such a request.
type BuildValidationError struct {
	Code      string
	Entity    brainz.Entity
	Offending string
	Required  []string
	Message   string
	Cause     error
}

func (e *BuildValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Code)
	if e.Entity != "" {
		fmt.Fprintf(&b, " [%s]", e.Entity)
	}
	b.WriteString(": ")
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		fmt.Fprintf(&b, "%q", e.Offending)
	}
	if len(e.Required) > 0 {
		fmt.Fprintf(&b, " (requires one of %s)", strings.Join(e.Required, ", "))
	}
	return b.String()
}

func (e *BuildValidationError) Unwrap() error { return e.Cause }

// NewValidationError constructs a BuildValidationError.
func NewValidationError(code string, entity brainz.Entity, offending string, required ...string) *BuildValidationError {
	return &BuildValidationError{
		Code:      code,
		Entity:    entity,
		Offending: offending,
		Required:  required,
	}
}

// Invalid constructs a BuildValidationError with a formatted message.
func Invalid(code string, entity brainz.Entity, format string, args ...any) *BuildValidationError {
	return &BuildValidationError{
		Code:    code,
		Entity:  entity,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsValidationError reports whether err is or wraps a BuildValidationError.
func IsValidationError(err error) bool {
	var ve *BuildValidationError
	return errors.As(err, &ve)
}

// ValidationCode returns the code of a wrapped BuildValidationError, or "".
func ValidationCode(err error) string {
	var ve *BuildValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}
