package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/phoneme"
)

func TestTokenizeSimpleSyllable(t *testing.T) {
	toks := Tokenize("ka")
	require.Len(t, toks, 1)
	assert.Equal(t, KindSyllable, toks[0].Kind)
	assert.Equal(t, "ka", toks[0].Syllable.ToMLCTS())
	assert.Equal(t, 0, toks[0].Start)
	assert.Equal(t, 2, toks[0].Len)
}

func TestTokenizeHDigraphWithMedialVowelAndTone(t *testing.T) {
	toks := Tokenize("hkyau:")
	require.Len(t, toks, 1)
	require.Equal(t, KindSyllable, toks[0].Kind)
	syl := toks[0].Syllable
	assert.Equal(t, phoneme.Hk, syl.Consonant.Basic)
	require.NotNil(t, syl.Consonant.Medial)
	assert.Equal(t, phoneme.MedialY, *syl.Consonant.Medial)
	assert.Equal(t, phoneme.VAu, syl.Vowel.Basic)
	require.NotNil(t, syl.Vowel.Tone)
	assert.Equal(t, phoneme.High, *syl.Vowel.Tone)
	assert.Equal(t, "hkyau:", syl.ToMLCTS())
}

func TestTokenizeWhitespaceSeparatedSyllables(t *testing.T) {
	toks := Tokenize("myan mar")
	var kinds []TokenKind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []TokenKind{KindSyllable, KindWhitespace, KindSyllable, KindSyllable}, kinds)
}

func TestTokenizeCoalescesUnknownRuns(t *testing.T) {
	toks := Tokenize("k@#a")
	var found bool
	for _, tk := range toks {
		if tk.Kind == KindUnknown {
			found = true
			assert.Equal(t, 2, tk.Len)
		}
	}
	assert.True(t, found)
}

func TestTokenOffsetsTileTheInput(t *testing.T) {
	input := "myan mar ka"
	toks := Tokenize(input)
	pos := 0
	for _, tk := range toks {
		assert.Equal(t, pos, tk.Start)
		pos += tk.Len
	}
	assert.Equal(t, len(input), pos)
}

func TestNhgNhyNormalization(t *testing.T) {
	toks := Tokenize("nhga")
	require.Len(t, toks, 1)
	require.Equal(t, KindSyllable, toks[0].Kind)
}

func TestCreakyFinalRejectsExplicitTone(t *testing.T) {
	toks := Tokenize("pat:")
	require.NotEmpty(t, toks)
	assert.Equal(t, KindSyllable, toks[0].Kind)
	syl := toks[0].Syllable
	if syl.Vowel.Virama != nil && syl.Vowel.Virama.CreakyOnly() {
		assert.Nil(t, syl.Vowel.Tone)
	}
}

func TestEndOfInputIsStableAfterExhaustion(t *testing.T) {
	tok := New("ka")
	tok.NextToken()
	first := tok.NextToken()
	second := tok.NextToken()
	assert.Equal(t, KindEndOfInput, first.Kind)
	assert.Equal(t, KindEndOfInput, second.Kind)
	assert.Equal(t, 0, first.Len)
	assert.Equal(t, 0, second.Len)
}
