package parsers

import (
	"github.com/tradewright/tradewright-commonj/internal/ascii"
)

// SwitchPrefixNone disables prefix-based switch detection. With no prefix
// configured, tokens of the form <identifier><value-separator><value> are
// recognized as switches by shape instead.
const SwitchPrefixNone rune = 0

// Default structural characters. A command line such as
//
//	input.txt -loglevel:debug -verbose
//
// parses with the defaults into one argument and two switches.
const (
	DefaultArgumentSeparator = ' '
	DefaultSwitchPrefix      = '-'
	DefaultValueSeparator    = ':'
)

// Config is the validated, immutable bundle of parse settings. The three
// structural characters are pairwise distinct and each printable ASCII
// (the prefix may alternatively be SwitchPrefixNone).
type Config struct {
	argumentSeparator rune
	switchPrefix      rune
	valueSeparator    rune
	caseSensitive     bool
}

// ArgumentSeparator returns the character that delimits tokens.
func (c Config) ArgumentSeparator() rune { return c.argumentSeparator }

// SwitchPrefix returns the character that introduces a switch token, or
// SwitchPrefixNone when prefix detection is disabled.
func (c Config) SwitchPrefix() rune { return c.switchPrefix }

// ValueSeparator returns the character that splits a switch into its name
// and value.
func (c Config) ValueSeparator() rune { return c.valueSeparator }

// CaseSensitive reports whether switch-name lookups are case-sensitive.
func (c Config) CaseSensitive() bool { return c.caseSensitive }

// Builder accumulates parse settings for a single input string and
// validates them atomically at Build time.
//
// Setters validate their character immediately; the first violation is
// remembered and surfaced by Build, so chained calls never need
// intermediate error checks:
//
//	parser, err := parsers.NewBuilder(input).
//		SwitchPrefix('/').
//		CaseSensitive(true).
//		Build()
type Builder struct {
	input string
	cfg   Config
	err   *ParseError
}

// NewBuilder returns a Builder for input with the default settings: space
// separator, hyphen prefix, colon value separator, case-insensitive names.
func NewBuilder(input string) *Builder {
	return &Builder{
		input: input,
		cfg: Config{
			argumentSeparator: DefaultArgumentSeparator,
			switchPrefix:      DefaultSwitchPrefix,
			valueSeparator:    DefaultValueSeparator,
		},
	}
}

// ArgumentSeparator sets the character that delimits tokens. It must be
// printable ASCII and distinct from the other structural characters at the
// time Build is called.
func (b *Builder) ArgumentSeparator(c rune) *Builder {
	if !ascii.IsPrintable(c) {
		b.setErr(Errorf(ErrorTypeInvalidConfiguration, "argument separator %q is not a printable ASCII character", c))
		return b
	}
	b.cfg.argumentSeparator = c
	return b
}

// SwitchPrefix sets the character that introduces a switch token.
// SwitchPrefixNone disables prefix detection; any other value must be
// printable ASCII.
func (b *Builder) SwitchPrefix(c rune) *Builder {
	if c != SwitchPrefixNone && !ascii.IsPrintable(c) {
		b.setErr(Errorf(ErrorTypeInvalidConfiguration, "switch prefix %q is not a printable ASCII character", c))
		return b
	}
	b.cfg.switchPrefix = c
	return b
}

// ValueSeparator sets the character that splits a switch into name and
// value. It must be printable ASCII.
func (b *Builder) ValueSeparator(c rune) *Builder {
	if !ascii.IsPrintable(c) {
		b.setErr(Errorf(ErrorTypeInvalidConfiguration, "value separator %q is not a printable ASCII character", c))
		return b
	}
	b.cfg.valueSeparator = c
	return b
}

// CaseSensitive sets whether switch-name lookups are case-sensitive.
func (b *Builder) CaseSensitive(caseSensitive bool) *Builder {
	b.cfg.caseSensitive = caseSensitive
	return b
}

// Build validates the accumulated settings and runs the parse. The full
// result is materialized here; the returned CommandParser is immutable.
func (b *Builder) Build() (*CommandParser, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.cfg.validate(); err != nil {
		return nil, err
	}
	return newCommandParser(b.input, b.cfg)
}

// setErr keeps only the first violation.
func (b *Builder) setErr(err *ParseError) {
	if b.err == nil {
		b.err = err
	}
}

// validate performs the cross-field distinctness check. SwitchPrefixNone
// never collides: the zero rune is outside the printable range required of
// the other two characters.
func (c Config) validate() error {
	if c.argumentSeparator == c.switchPrefix ||
		c.argumentSeparator == c.valueSeparator ||
		c.switchPrefix == c.valueSeparator {
		return NewError(ErrorTypeInvalidConfiguration,
			"argument separator, switch prefix and value separator must all be different")
	}
	return nil
}
