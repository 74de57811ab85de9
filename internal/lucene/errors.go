package lucene

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes construction failures.
type ErrorCode string

const (
	// ErrCodeEmptyText indicates a term with no text.
	ErrCodeEmptyText ErrorCode = "EMPTY_TEXT"

	// ErrCodeInvalidBoost indicates a boost that is not a positive finite number.
	ErrCodeInvalidBoost ErrorCode = "INVALID_BOOST"

	// ErrCodeFuzzyWildcard indicates fuzzy matching requested on a wildcard term.
	ErrCodeFuzzyWildcard ErrorCode = "FUZZY_WILDCARD"

	// ErrCodeUnknownKind indicates a TermKind outside the defined set.
	ErrCodeUnknownKind ErrorCode = "UNKNOWN_KIND"

	// ErrCodeTooFewChildren indicates an And/Or with fewer than two children.
	ErrCodeTooFewChildren ErrorCode = "TOO_FEW_CHILDREN"

	// ErrCodeNilExpression indicates a nil child or inner expression.
	ErrCodeNilExpression ErrorCode = "NIL_EXPRESSION"

	// ErrCodeDoubleModifier indicates Require/Prohibit applied to a node that
	// already carries one, including a zero-term Field.
	ErrCodeDoubleModifier ErrorCode = "DOUBLE_MODIFIER"
)

// Error reports a Term or Expr that could not be constructed.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsConstructionError reports whether err is (or wraps) a lucene *Error.
func IsConstructionError(err error) bool {
	var le *Error
	return errors.As(err, &le)
}
