package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodFilter_Patterns(t *testing.T) {
	t.Run("class and method with double colon", func(t *testing.T) {
		f, err := ParseMethodFilter("util.Strings::indexOf")
		require.NoError(t, err)
		assert.True(t, f.Matches("util.Strings", "indexOf"))
		assert.False(t, f.Matches("util.Strings", "lastIndexOf"))
		assert.False(t, f.Matches("util.Buffers", "indexOf"))
	})

	t.Run("class and method with last dot", func(t *testing.T) {
		f, err := ParseMethodFilter("util.Strings.indexOf")
		require.NoError(t, err)
		assert.True(t, f.Matches("util.Strings", "indexOf"))
		assert.False(t, f.Matches("util", "Strings"))
	})

	t.Run("trailing dot selects all methods of a class", func(t *testing.T) {
		f, err := ParseMethodFilter("util.Strings.")
		require.NoError(t, err)
		assert.True(t, f.Matches("util.Strings", "anything"))
		assert.False(t, f.Matches("util.Buffers", "anything"))
	})

	t.Run("bare name selects the method in every class", func(t *testing.T) {
		f, err := ParseMethodFilter("hashCode")
		require.NoError(t, err)
		assert.True(t, f.Matches("util.Strings", "hashCode"))
		assert.True(t, f.Matches("util.Buffers", "hashCode"))
		assert.False(t, f.Matches("util.Buffers", "equals"))
	})

	t.Run("leading dot selects the method in every class", func(t *testing.T) {
		f, err := ParseMethodFilter(".hashCode")
		require.NoError(t, err)
		assert.True(t, f.Matches("anything", "hashCode"))
	})
}

func TestMethodFilter_MultipleLines(t *testing.T) {
	f, err := ParseMethodFilter("util.Strings::indexOf\nutil.Buffers.\n\nio.Channel::read")
	require.NoError(t, err)
	assert.True(t, f.Matches("util.Strings", "indexOf"))
	assert.True(t, f.Matches("util.Buffers", "flip"))
	assert.True(t, f.Matches("io.Channel", "read"))
	assert.False(t, f.Matches("io.Channel", "write"))
}

func TestMethodFilter_CommaSeparated(t *testing.T) {
	f, err := ParseMethodFilter("util.Strings::indexOf,util.Buffers.")
	require.NoError(t, err)
	assert.True(t, f.Matches("util.Strings", "indexOf"))
	assert.True(t, f.Matches("util.Buffers", "flip"))
}

func TestMethodFilter_FirstClassMatchWins(t *testing.T) {
	// The first class entry decides even when a later method entry would
	// have matched any class.
	f := &MethodFilter{}
	require.NoError(t, f.AddPattern("util.Strings::indexOf"))
	require.NoError(t, f.AddPattern(".flip"))
	assert.False(t, f.Matches("util.Strings", "other"))
	assert.True(t, f.Matches("util.Strings", "flip")) // method list membership
	assert.True(t, f.Matches("util.Buffers", "flip")) // all-classes entry
}

func TestMethodFilter_Empty(t *testing.T) {
	f := &MethodFilter{}
	assert.True(t, f.Empty())
	assert.False(t, f.Matches("any", "thing"))
	require.NoError(t, f.AddPattern("  "))
	assert.True(t, f.Empty())
	require.NoError(t, f.AddPattern("x.y"))
	assert.False(t, f.Empty())
}
