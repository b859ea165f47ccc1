package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSwitchNameAndValue(t *testing.T) {
	t.Parallel()

	sw, err := newSwitch("loglevel:H", ':')
	require.NoError(t, err)
	assert.Equal(t, "loglevel", sw.Name())
	assert.Equal(t, "H", sw.Value())
}

func TestNewSwitchWithoutValue(t *testing.T) {
	t.Parallel()

	sw, err := newSwitch("verbose", ':')
	require.NoError(t, err)
	assert.Equal(t, "verbose", sw.Name())
	assert.Equal(t, "", sw.Value())
}

func TestNewSwitchEmptyValue(t *testing.T) {
	t.Parallel()

	sw, err := newSwitch("B:", ':')
	require.NoError(t, err)
	assert.Equal(t, "B", sw.Name())
	assert.Equal(t, "", sw.Value())
}

func TestNewSwitchSplitsAtFirstSeparator(t *testing.T) {
	t.Parallel()

	sw, err := newSwitch(`D:D:"\My Folder"`, ':')
	require.NoError(t, err)
	assert.Equal(t, "D", sw.Name())
	// The remainder has no leading quote, so nothing is stripped.
	assert.Equal(t, `D:"\My Folder"`, sw.Value())
}

func TestNewSwitchQuotedValue(t *testing.T) {
	t.Parallel()

	sw, err := newSwitch(`C:"Wiggly woo"`, ':')
	require.NoError(t, err)
	assert.Equal(t, "C", sw.Name())
	assert.Equal(t, "Wiggly woo", sw.Value())
}

func TestNewSwitchMalformed(t *testing.T) {
	t.Parallel()

	_, err := newSwitch(":value", ':')
	require.Error(t, err)
	assert.True(t, IsMalformed(err))
}

func TestSwitchEqual(t *testing.T) {
	t.Parallel()

	a, err := newSwitch("name:value", ':')
	require.NoError(t, err)
	b, err := newSwitch("name=value", '=')
	require.NoError(t, err)
	c, err := newSwitch("name:other", ':')
	require.NoError(t, err)

	// Equality is structural over (name, value); a switch equals itself
	// and the value separator plays no part.
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSwitchString(t *testing.T) {
	t.Parallel()

	sw, err := newSwitch("out:logfile", ':')
	require.NoError(t, err)
	assert.Equal(t, "out:logfile", sw.String())

	bare, err := newSwitch("verbose", ':')
	require.NoError(t, err)
	assert.Equal(t, "verbose:", bare.String())
}
