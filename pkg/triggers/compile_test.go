package triggers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchesAny(regexes []*regexp.Regexp, text string) bool {
	for _, re := range regexes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func TestCompileEmptyInputs(t *testing.T) {
	assert.Empty(t, Compile(""))
	assert.Empty(t, Compile("   "))
	// The bare wildcard is handled upstream as the always-match flag
	assert.Empty(t, Compile("*"))
	assert.Empty(t, Compile("  *  "))
}

func TestCompileWordBoundaries(t *testing.T) {
	regexes := Compile("docstring{s,}")
	require.Len(t, regexes, 2)

	tests := []struct {
		name  string
		text  string
		match bool
	}{
		{"singular mid-sentence", "add a docstring for this", true},
		{"plural mid-sentence", "multiple docstrings are needed", true},
		{"start of text", "docstring needed here", true},
		{"end of text", "please add a docstring", true},
		{"punctuation flanked", "what is a docstring?", true},
		{"inside a longer word", "docstringing everything", false},
		{"prefix of a longer word", "no docstringification", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, matchesAny(regexes, tt.text))
		})
	}
}

func TestCompileWildcardSuppressesBoundaries(t *testing.T) {
	regexes := Compile("docstring*")
	require.NotEmpty(t, regexes)

	// Wildcard patterns are free substring matches
	assert.True(t, matchesAny(regexes, "docstringing everything"))
	assert.True(t, matchesAny(regexes, "a docstring"))
}

func TestCompileCaseInsensitive(t *testing.T) {
	regexes := Compile("DocString")
	require.NotEmpty(t, regexes)

	assert.True(t, matchesAny(regexes, "add a docstring here"))
	assert.True(t, matchesAny(regexes, "ADD A DOCSTRING HERE"))
}

func TestCompileSpansNewlines(t *testing.T) {
	regexes := Compile("extract*assets")
	require.NotEmpty(t, regexes)

	assert.True(t, matchesAny(regexes, "extract the\ndesign assets"))
}

func TestCompileFlexibleWhitespace(t *testing.T) {
	regexes := Compile("pull request")
	require.NotEmpty(t, regexes)

	assert.True(t, matchesAny(regexes, "open a pull request"))
	assert.True(t, matchesAny(regexes, "open a pull   request"))
	assert.True(t, matchesAny(regexes, "open a pull\nrequest"))
	assert.False(t, matchesAny(regexes, "open a pullrequest"))
}

func TestCompileQuestionMark(t *testing.T) {
	regexes := Compile("v?.?")
	require.NotEmpty(t, regexes)

	assert.True(t, matchesAny(regexes, "bump to v1.2"))
}

func TestCompileCharacterClass(t *testing.T) {
	regexes := Compile("file[0-9]")
	require.NotEmpty(t, regexes)

	assert.True(t, matchesAny(regexes, "open file5 please"))
	assert.False(t, matchesAny(regexes, "open filex please"))
}

func TestCompileUnterminatedClassIsDropped(t *testing.T) {
	// Malformed alternative: dropped, not fatal
	assert.Empty(t, Compile("foo[bar"))
}

func TestCompileSiblingAlternativesSurviveMalformedOne(t *testing.T) {
	// Only the unterminated-class alternative is dropped
	regexes := Compile("{good,bad[}")
	require.Len(t, regexes, 1)

	assert.True(t, matchesAny(regexes, "this is good input"))
}

func TestCompileEscapesRegexMetacharacters(t *testing.T) {
	regexes := Compile("what. (now)")
	require.NotEmpty(t, regexes)

	assert.True(t, matchesAny(regexes, "so what. (now) then"))
	// The dot must be literal, not "any character"
	assert.False(t, matchesAny(regexes, "so whatx (now) then"))
}

func TestCompileEscapedBraceIsLiteral(t *testing.T) {
	regexes := Compile(`\{config}`)
	require.NotEmpty(t, regexes)

	assert.True(t, matchesAny(regexes, "edit the {config} block"))
}
