// Package ascii provides character classification and case folding over the
// printable ASCII range handled by the command parser.
package ascii

// IsPrintable reports whether r is a printable ASCII character. The accepted
// range is 0x20 (space) up to and including 0x7D ('}').
func IsPrintable(r rune) bool {
	return r >= 32 && r < 126
}

// IsLetterOrDigit reports whether r is an ASCII letter or digit.
func IsLetterOrDigit(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	default:
		return false
	}
}

// Fold maps an ASCII upper-case letter to its lower-case form and returns
// every other byte unchanged.
func Fold(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// FoldString returns s with all ASCII upper-case letters folded to lower
// case. The input is returned as-is when no folding is needed.
func FoldString(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = Fold(b[j])
			}
			return string(b)
		}
	}
	return s
}

// EqualFold reports whether a and b are equal under ASCII case folding.
// Unlike strings.EqualFold it never applies Unicode case rules, matching
// the parser's printable-ASCII character domain.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if Fold(a[i]) != Fold(b[i]) {
			return false
		}
	}
	return true
}
