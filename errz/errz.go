// Package errz defines the error types shared by all probkit packages.
//
// Every failure falls into one of a small set of kinds. Invalid-parameter
// errors fire before any computation runs and always name the offending
// parameter. Division-by-zero errors mark mathematically undefined
// operations on otherwise well-formed arguments. Overflow errors mark
// valid inputs whose exact integer result cannot be represented.
package errz

import "fmt"

// Kind represents the category of an error.
type Kind int

const (
	// KindInvalidParameter indicates a precondition violation on an argument.
	KindInvalidParameter Kind = iota
	// KindDivisionByZero indicates a zero denominator in a ratio operation.
	KindDivisionByZero
	// KindOverflow indicates an exact integer result outside the int64 range.
	KindOverflow
	// KindEmptyInput indicates an empty sequence where at least one element
	// is required.
	KindEmptyInput
	// KindIllegalState indicates a degenerate intermediate value, such as a
	// zero-variance marginal in a correlation.
	KindIllegalState
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidParameter:
		return "invalid parameter"
	case KindDivisionByZero:
		return "division by zero"
	case KindOverflow:
		return "overflow"
	case KindEmptyInput:
		return "empty input"
	case KindIllegalState:
		return "illegal state"
	default:
		return "error"
	}
}

// Sentinel values for use with errors.Is. Each matches any *Error of the
// same kind regardless of parameter or message.
var (
	ErrInvalidParameter = &Error{kind: KindInvalidParameter}
	ErrDivisionByZero   = &Error{kind: KindDivisionByZero}
	ErrOverflow         = &Error{kind: KindOverflow}
	ErrEmptyInput       = &Error{kind: KindEmptyInput}
	ErrIllegalState     = &Error{kind: KindIllegalState}
)

// Error is a categorized error that optionally identifies the parameter
// that caused it.
type Error struct {
	kind    Kind
	param   string
	message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.param == "" {
		if e.message == "" {
			return e.kind.String()
		}
		return fmt.Sprintf("%s: %s", e.kind, e.message)
	}
	if e.message == "" {
		return fmt.Sprintf("%s: %q", e.kind, e.param)
	}
	return fmt.Sprintf("%s: %q %s", e.kind, e.param, e.message)
}

// Kind returns the category of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Param returns the name of the offending parameter, if any.
func (e *Error) Param() string {
	return e.param
}

// Is reports whether target matches this error by kind. This makes the
// package sentinels usable with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind && t.param == "" && t.message == ""
}

// InvalidParameterf returns an invalid-parameter error naming param.
func InvalidParameterf(param, format string, args ...any) error {
	return &Error{
		kind:    KindInvalidParameter,
		param:   param,
		message: fmt.Sprintf(format, args...),
	}
}

// DivisionByZerof returns a division-by-zero error for the given operation.
func DivisionByZerof(format string, args ...any) error {
	return &Error{
		kind:    KindDivisionByZero,
		message: fmt.Sprintf(format, args...),
	}
}

// Overflowf returns an overflow error.
func Overflowf(format string, args ...any) error {
	return &Error{
		kind:    KindOverflow,
		message: fmt.Sprintf(format, args...),
	}
}

// EmptyInput returns an empty-input error naming param.
func EmptyInput(param string) error {
	return &Error{
		kind:    KindEmptyInput,
		param:   param,
		message: "sequence must not be empty",
	}
}

// IllegalStatef returns an illegal-state error.
func IllegalStatef(format string, args ...any) error {
	return &Error{
		kind:    KindIllegalState,
		message: fmt.Sprintf(format, args...),
	}
}
