package icu

import (
	"errors"
	"fmt"
)

var (
	errNotNumeric = errors.New("value is not numeric")
	errNotTime    = errors.New("value is not a time.Time")
	errNotString  = errors.New("value is not a string")
)

// SyntaxError reports a malformed template. It is a compile-time failure:
// a broken default template is a programming error and is surfaced to the
// caller rather than swallowed by runtime fallbacks.
type SyntaxError struct {
	Msg string
	Pos int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("icu: syntax error at offset %d: %s", e.Pos, e.Msg)
}

// MissingValueError reports an argument referenced by the template but not
// present in the substitution values. It is recoverable: resolvers treat it
// as a fallback-step failure.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("icu: no value supplied for argument %q", e.Name)
}

// FormatError reports a value that could not be coerced through a formatter,
// including invalid style/option combinations. Recoverable, same treatment
// as MissingValueError.
type FormatError struct {
	Name string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("icu: formatting argument %q: %v", e.Name, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
