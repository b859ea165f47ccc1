package parsers

import "strings"

// splitState tracks whether the pending buffer currently sits inside an
// open quoted region.
type splitState int

const (
	outsideToken splitState = iota
	insideQuotedToken
)

// splitTokens converts the trimmed input into raw tokens: maximal runs of
// characters between occurrences of the separator, where separators inside
// quoted regions do not split.
//
// The input is first split naively on every literal separator, then the
// fragments are folded left to right into a pending buffer. While the
// buffer holds an odd number of double quotes the token is still open, so
// following fragments are appended with the separator re-inserted at each
// join. Once quotes balance the buffer is emitted, trimmed of surrounding
// whitespace. A buffer still open when input ends is emitted verbatim.
func splitTokens(input string, separator rune) []string {
	if input == "" {
		return nil
	}

	fragments := strings.Split(input, string(separator))
	// Trailing separators yield empty fragments that produce no tokens.
	for len(fragments) > 0 && fragments[len(fragments)-1] == "" {
		fragments = fragments[:len(fragments)-1]
	}

	var tokens []string
	var pending strings.Builder
	state := outsideToken

	for _, fragment := range fragments {
		if state == outsideToken && pending.Len() == 0 && fragment == "" && separator == ' ' {
			// Runs of consecutive spaces collapse. Other separators keep
			// their empty tokens: comma-comma is an empty argument.
			continue
		}

		if pending.Len() > 0 {
			pending.WriteRune(separator)
		}
		pending.WriteString(fragment)

		if hasUnbalancedQuotes(pending.String()) {
			state = insideQuotedToken
			continue
		}

		tokens = append(tokens, strings.TrimSpace(pending.String()))
		pending.Reset()
		state = outsideToken
	}

	if pending.Len() > 0 {
		// Quotes stayed unbalanced to the end of input; emit the remainder
		// untrimmed.
		tokens = append(tokens, pending.String())
	}

	return tokens
}

// hasUnbalancedQuotes reports whether s contains an odd number of double
// quote characters, i.e. ends inside an open quoted region.
func hasUnbalancedQuotes(s string) bool {
	return strings.Count(s, `"`)%2 != 0
}

// trimQuotes strips exactly one layer of surrounding double quotes: one
// leading and one trailing quote character. Quotes elsewhere in the value
// are preserved.
func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
