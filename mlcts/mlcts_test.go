package mlcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMyanmarFacade(t *testing.T) {
	assert.Equal(t, "pissa", FromMyanmar("ပိဿာ"))
}

func TestTokenizeFacadeDefaultPermissive(t *testing.T) {
	toks := Tokenize("ka", Options{})
	require.Len(t, toks, 1)
	assert.Equal(t, "ka", toks[0].Syllable.ToMLCTS())
}

func TestTokenizeFacadeStrict(t *testing.T) {
	toks := Tokenize("ka", Options{StrictVirama: true})
	require.Len(t, toks, 1)
	assert.Equal(t, "ka", toks[0].Syllable.ToMLCTS())
}

func TestDetectScriptByLanguage(t *testing.T) {
	assert.True(t, DetectScript("hello", Options{Language: "my"}))
	assert.True(t, DetectScript("hello", Options{Language: "mya"}))
	assert.False(t, DetectScript("hello", Options{Language: "eng"}))
}

func TestDetectScriptByHeuristic(t *testing.T) {
	assert.True(t, DetectScript("ကျွန်တော်", Options{}))
	assert.False(t, DetectScript("hello world", Options{}))
}

func TestSplitSyllablesFacade(t *testing.T) {
	spans := SplitSyllables("ကျွန်တော်က")
	assert.Equal(t, []string{"ကျွန်", "တော်", "က"}, spans)
}
