package classify

import (
	"errors"
	"fmt"
)

// Condition and classification errors
var (
	// ErrInvalidSentence is returned when the sentence to classify is missing
	// or is not a string. It is an input error, distinct from a verdict with
	// failed rules.
	ErrInvalidSentence = errors.New("invalid input: sentence is required and must be a string")

	// ErrEmptyCondition is returned when a condition has no tokens.
	ErrEmptyCondition = errors.New("condition is empty")

	// ErrConditionTooLong is returned when a condition exceeds Limits.MaxLength.
	ErrConditionTooLong = errors.New("condition exceeds maximum length")

	// ErrTooDeep is returned when nesting exceeds Limits.MaxDepth.
	ErrTooDeep = errors.New("condition nesting exceeds maximum depth")

	// ErrTooManyArguments is returned when a call exceeds Limits.MaxArgs.
	ErrTooManyArguments = errors.New("too many function arguments")

	// ErrNotBoolean is returned when a condition is well-formed but yields a
	// number instead of a truth value, e.g. "A + 1".
	ErrNotBoolean = errors.New("condition does not evaluate to a boolean")

	// ErrDivisionByZero is returned at evaluation time for x / 0.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNonFinite is returned when arithmetic overflows to an infinity.
	ErrNonFinite = errors.New("arithmetic result is not finite")

	// ErrEvaluationPanic is recorded when evaluating a rule panics.
	ErrEvaluationPanic = errors.New("condition evaluation panicked")
)

// SyntaxError reports a condition that could not be parsed.
// Pos is the byte offset of the offending token.
type SyntaxError struct {
	Pos int
	Msg string
	Err error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

// Unwrap returns the limit sentinel behind the error, if any.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func syntaxErrorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
