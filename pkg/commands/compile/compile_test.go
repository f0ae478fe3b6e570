package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePattern(t *testing.T) {
	result, err := CompilePattern(Options{Pattern: "docstring{s,}"})
	require.NoError(t, err)

	assert.Equal(t, []string{"docstrings", "docstring"}, result.Alternatives)
	assert.Len(t, result.Regexes, 2)
	assert.False(t, result.AlwaysMatch)
}

func TestCompilePatternWildcard(t *testing.T) {
	result, err := CompilePattern(Options{Pattern: " * "})
	require.NoError(t, err)

	assert.True(t, result.AlwaysMatch)
	assert.Empty(t, result.Regexes)
}

func TestCompilePatternEmpty(t *testing.T) {
	result, err := CompilePattern(Options{Pattern: "   "})
	require.NoError(t, err)

	assert.False(t, result.AlwaysMatch)
	assert.Empty(t, result.Alternatives)
	assert.Empty(t, result.Regexes)
}

func TestCompilePatternMalformed(t *testing.T) {
	result, err := CompilePattern(Options{Pattern: "foo[bar"})
	require.NoError(t, err)

	// The alternative is listed but produced no usable regex
	assert.Equal(t, []string{"foo[bar"}, result.Alternatives)
	assert.Empty(t, result.Regexes)
}
