package parsers

import (
	"errors"
	"fmt"
)

// ErrorType represents error categories for command parsing.
type ErrorType string

const (
	// ErrorTypeInvalidConfiguration indicates a builder setting that
	// violates the printable-ASCII rule or the pairwise-distinctness rule.
	ErrorTypeInvalidConfiguration ErrorType = "invalid_configuration"

	// ErrorTypeMalformedSwitch indicates a switch token whose value
	// separator appears before any name character.
	ErrorTypeMalformedSwitch ErrorType = "malformed_switch"

	// ErrorTypeIndexOutOfRange indicates an argument lookup outside
	// [0, NumArgs).
	ErrorTypeIndexOutOfRange ErrorType = "index_out_of_range"

	// ErrorTypeSwitchNotFound indicates a value lookup for a switch name
	// with no matching occurrence.
	ErrorTypeSwitchNotFound ErrorType = "switch_not_found"
)

// ParseError is the error type returned by the builder, the classifier and
// the lookup methods. All failures are synchronous and final; nothing is
// retried internally.
type ParseError struct {
	Type       ErrorType
	Message    string
	Suggestion string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (did you mean '%s'?)", e.Message, e.Suggestion)
	}
	return e.Message
}

// NewError creates a new ParseError with the given type and message.
func NewError(typ ErrorType, message string) *ParseError {
	return &ParseError{
		Type:    typ,
		Message: message,
	}
}

// Errorf creates a new ParseError with a formatted message.
func Errorf(typ ErrorType, format string, args ...any) *ParseError {
	return NewError(typ, fmt.Sprintf(format, args...))
}

// WithSuggestion attaches a "did you mean" suggestion to the error.
func (e *ParseError) WithSuggestion(suggestion string) *ParseError {
	e.Suggestion = suggestion
	return e
}

func isType(err error, typ ErrorType) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Type == typ
	}
	return false
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return isType(err, ErrorTypeInvalidConfiguration)
}

// IsMalformed reports whether err is a malformed-switch error.
func IsMalformed(err error) bool {
	return isType(err, ErrorTypeMalformedSwitch)
}

// IsOutOfRange reports whether err is an out-of-range argument lookup error.
func IsOutOfRange(err error) bool {
	return isType(err, ErrorTypeIndexOutOfRange)
}

// IsNotFound reports whether err is a switch-not-found lookup error.
func IsNotFound(err error) bool {
	return isType(err, ErrorTypeSwitchNotFound)
}
