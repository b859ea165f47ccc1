package parsers

import "strings"

// Switch is one named element of a parsed command: an identifier plus an
// optional value. The value defaults to the empty string when the token
// carries no value separator.
type Switch struct {
	name           string
	value          string
	valueSeparator rune
}

// newSwitch splits text at the first occurrence of the value separator.
// A separator at position zero means the token has no name and is malformed.
func newSwitch(text string, valueSeparator rune) (Switch, error) {
	i := strings.IndexRune(text, valueSeparator)
	if i == 0 {
		return Switch{}, Errorf(ErrorTypeMalformedSwitch, "malformed switch: %s", text)
	}

	sw := Switch{valueSeparator: valueSeparator}
	if i > 0 {
		// The separator is printable ASCII, always a single byte.
		sw.name = text[:i]
		sw.value = trimQuotes(text[i+1:])
	} else {
		sw.name = text
	}
	return sw, nil
}

// Name returns the switch's identifier.
func (s Switch) Name() string { return s.name }

// Value returns the switch's value, or the empty string when none was given.
func (s Switch) Value() string { return s.value }

// Equal reports whether two switches have the same name and value. The
// value separator is presentation only and takes no part in equality.
func (s Switch) Equal(other Switch) bool {
	return s.name == other.name && s.value == other.value
}

// String renders the switch in its textual form, name<sep>value.
// Re-parsing that text under the same configuration yields an equal switch.
func (s Switch) String() string {
	return s.name + string(s.valueSeparator) + s.value
}
