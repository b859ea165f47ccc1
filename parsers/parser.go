// Package parsers determines the number and values of text elements in a
// string. Elements are interpreted either as arguments, which have
// positional significance, or as switches, which have an explicit
// identifier and an optional value.
//
// Typically the supplied string is the argument portion of the command
// used to start an application, but any delimited text works. Elements are
// separated by one or more occurrences of the argument separator
// character; elements that contain the separator must be enclosed in
// double quotes.
//
// A CommandParser is constructed through a Builder:
//
//	parser, err := parsers.NewBuilder(`input.txt -out:"My Logs\app.log" -verbose`).Build()
//
// The whole parse runs at build time. The resulting CommandParser is
// immutable and safe for concurrent use.
package parsers

import (
	"strings"

	"github.com/tradewright/tradewright-commonj/internal/ascii"
	"github.com/tradewright/tradewright-commonj/internal/fuzzy"
)

// maxSuggestDistance bounds the edit distance for did-you-mean
// suggestions on failed value lookups.
const maxSuggestDistance = 2

// CommandParser holds the result of parsing one command string: the
// ordered arguments, the ordered switches, and the configuration that
// produced them. Both sequences are fully materialized at construction and
// never mutated afterwards.
type CommandParser struct {
	cfg      Config
	input    string
	args     []string
	switches []Switch

	// set once the stop-switches sentinel has been seen
	remainingAreArgs bool
}

// Parse parses input with the default configuration: space separator,
// hyphen prefix, colon value separator, case-insensitive switch names.
func Parse(input string) (*CommandParser, error) {
	return NewBuilder(input).Build()
}

func newCommandParser(input string, cfg Config) (*CommandParser, error) {
	p := &CommandParser{
		cfg:   cfg,
		input: strings.TrimSpace(input),
	}

	for _, token := range splitTokens(p.input, cfg.argumentSeparator) {
		if err := p.classify(token); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// classify routes one raw token into the argument or switch sequence.
// Rules are evaluated strictly in order; in particular the sentinel check
// runs before the stop-switches mode check, so a repeated sentinel is
// consumed again rather than becoming an argument.
func (p *CommandParser) classify(token string) error {
	prefixed := p.cfg.switchPrefix != SwitchPrefixNone
	prefix := string(p.cfg.switchPrefix)

	switch {
	case prefixed && token == prefix+prefix:
		// Stop-switches sentinel: every token from here on is an
		// argument, whatever its shape. The sentinel itself is dropped.
		p.remainingAreArgs = true

	case p.remainingAreArgs:
		p.args = append(p.args, trimQuotes(token))

	case !prefixed && len(token) > 2 &&
		ascii.IsLetterOrDigit(rune(token[0])) &&
		strings.IndexRune(token, p.cfg.valueSeparator) >= 1:
		// No-prefix mode: recognized as a switch by shape.
		return p.appendSwitch(token)

	case prefixed && strings.HasPrefix(token, prefix) && len(token) > 1:
		return p.appendSwitch(token[len(prefix):])

	default:
		p.args = append(p.args, trimQuotes(token))
	}

	return nil
}

func (p *CommandParser) appendSwitch(text string) error {
	sw, err := newSwitch(text, p.cfg.valueSeparator)
	if err != nil {
		return err
	}
	p.switches = append(p.switches, sw)
	return nil
}

// Input returns the trimmed input string the parser was built from.
func (p *CommandParser) Input() string { return p.input }

// Config returns the configuration used to produce this result.
func (p *CommandParser) Config() Config { return p.cfg }

// Arg returns the argument at the given position. It fails with an
// out-of-range error when index is outside [0, NumArgs).
func (p *CommandParser) Arg(index int) (string, error) {
	if index < 0 || index >= len(p.args) {
		return "", Errorf(ErrorTypeIndexOutOfRange,
			"argument index %d out of range [0, %d)", index, len(p.args))
	}
	return p.args[index], nil
}

// Args returns all arguments in order of appearance. The returned slice is
// a copy; mutating it does not affect the parser.
func (p *CommandParser) Args() []string {
	out := make([]string, len(p.args))
	copy(out, p.args)
	return out
}

// NumArgs returns the number of arguments.
func (p *CommandParser) NumArgs() int { return len(p.args) }

// Switches returns all switches in order of appearance. The returned slice
// is a copy; mutating it does not affect the parser.
func (p *CommandParser) Switches() []Switch {
	out := make([]Switch, len(p.switches))
	copy(out, p.switches)
	return out
}

// NumSwitches returns the number of switches.
func (p *CommandParser) NumSwitches() int { return len(p.switches) }

// IsSwitchSet reports whether a switch with the given name is present.
func (p *CommandParser) IsSwitchSet(name string) bool {
	return p.SwitchIndex(name) != -1
}

// SwitchIndex returns the zero-based index of the first switch with the
// given name, or -1 when no switch matches. Duplicate names are retained
// in order, so later occurrences are reachable through Switches.
func (p *CommandParser) SwitchIndex(name string) int {
	for i, sw := range p.switches {
		if p.nameMatches(sw.name, name) {
			return i
		}
	}
	return -1
}

// SwitchValue returns the value of the first switch with the given name.
// An absent name fails with a not-found error, distinct from a present
// switch whose value is the empty string. When a configured switch name is
// close to the requested one, the error carries it as a suggestion.
func (p *CommandParser) SwitchValue(name string) (string, error) {
	i := p.SwitchIndex(name)
	if i == -1 {
		err := Errorf(ErrorTypeSwitchNotFound, "switch %q is not set", name)
		if best := p.closestSwitchName(name); best != "" {
			err = err.WithSuggestion(best)
		}
		return "", err
	}
	return p.switches[i].value, nil
}

func (p *CommandParser) nameMatches(switchName, name string) bool {
	if p.cfg.caseSensitive {
		return switchName == name
	}
	return ascii.EqualFold(switchName, name)
}

func (p *CommandParser) closestSwitchName(name string) string {
	if len(p.switches) == 0 {
		return ""
	}
	names := make([]string, len(p.switches))
	for i, sw := range p.switches {
		names[i] = sw.name
	}
	return fuzzy.BestMatch(name, names, maxSuggestDistance, p.cfg.caseSensitive)
}
