// Package fuzzy provides edit-distance matching for switch names.
// Used by parsers to attach a "did you mean" suggestion to failed lookups.
package fuzzy

import (
	"github.com/tradewright/tradewright-commonj/internal/ascii"
)

// Matcher finds the closest switch name within a maximum edit distance.
// Name comparison honours the parser's case-sensitivity setting: when
// case-insensitive, input and candidates are ASCII-folded before matching.
type Matcher struct {
	maxDistance   int
	caseSensitive bool
	minLength     int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int, caseSensitive bool) *Matcher {
	return &Matcher{
		maxDistance:   maxDistance,
		caseSensitive: caseSensitive,
		minLength:     2, // don't suggest for very short inputs
	}
}

// BestMatch returns the candidate closest to input, or the empty string when
// no candidate is within the maximum distance. Exact matches are skipped:
// an exact name would have been found by the lookup itself. Ties are broken
// by longer common prefix, then by candidate order.
func (m *Matcher) BestMatch(input string, candidates []string) string {
	if len(input) < m.minLength {
		return ""
	}

	target := m.fold(input)
	best := ""
	bestDistance := m.maxDistance + 1
	bestPrefix := -1

	for _, candidate := range candidates {
		folded := m.fold(candidate)
		if folded == target {
			continue
		}

		distance := m.distance(target, folded)
		if distance > m.maxDistance {
			continue
		}

		prefix := commonPrefixLength(target, folded)
		if distance < bestDistance || (distance == bestDistance && prefix > bestPrefix) {
			best = candidate
			bestDistance = distance
			bestPrefix = prefix
		}
	}

	return best
}

func (m *Matcher) fold(s string) string {
	if m.caseSensitive {
		return s
	}
	return ascii.FoldString(s)
}

// distance computes the levenshtein distance between a and b using two
// rolling rows, giving up early once the distance cannot come back under
// the maximum.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for i := 1; i <= len(b); i++ {
		current[0] = i
		minInRow := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}

			current[j] = minThree(
				current[j-1]+1,     // insertion
				previous[j]+1,      // deletion
				previous[j-1]+cost, // substitution
			)

			if current[j] < minInRow {
				minInRow = current[j]
			}
		}

		if minInRow > m.maxDistance {
			return m.maxDistance + 1
		}

		previous, current = current, previous
	}

	return previous[len(a)]
}

func commonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minThree(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// BestMatch is a convenience wrapper for one-off lookups.
func BestMatch(input string, candidates []string, maxDistance int, caseSensitive bool) string {
	return NewMatcher(maxDistance, caseSensitive).BestMatch(input, candidates)
}
