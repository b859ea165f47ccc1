package ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrintable(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPrintable(' '))
	assert.True(t, IsPrintable('a'))
	assert.True(t, IsPrintable('}'))

	assert.False(t, IsPrintable('~')) // 0x7E is past the accepted range
	assert.False(t, IsPrintable(31))
	assert.False(t, IsPrintable(127))
	assert.False(t, IsPrintable(0))
	assert.False(t, IsPrintable('é'))
}

func TestIsLetterOrDigit(t *testing.T) {
	t.Parallel()

	for _, r := range "azAZ09" {
		assert.True(t, IsLetterOrDigit(r), "expected %q to classify as letter or digit", r)
	}
	for _, r := range "-/:=,\" ~" {
		assert.False(t, IsLetterOrDigit(r), "expected %q not to classify as letter or digit", r)
	}
	// Unicode letters are outside the parser's character domain.
	assert.False(t, IsLetterOrDigit('é'))
}

func TestFoldString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "loglevel", FoldString("LogLevel"))
	assert.Equal(t, "already lower", FoldString("already lower"))
	assert.Equal(t, "mixed-123", FoldString("MIXED-123"))
	assert.Equal(t, "", FoldString(""))
}

func TestEqualFold(t *testing.T) {
	t.Parallel()

	assert.True(t, EqualFold("loglevel", "LOGLEVEL"))
	assert.True(t, EqualFold("", ""))
	assert.True(t, EqualFold("a-b", "A-B"))

	assert.False(t, EqualFold("loglevel", "loglevels"))
	assert.False(t, EqualFold("abc", "abd"))
	// No Unicode folding: the Kelvin sign U+212A must not match 'k',
	// even though strings.EqualFold folds them together.
	assert.False(t, EqualFold("K", "k"))
	assert.True(t, EqualFold("K", "k"))
}
