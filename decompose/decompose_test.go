package decompose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/phoneme"
)

func TestFromMyanmarLigature(t *testing.T) {
	assert.Equal(t, "pissa", FromMyanmar("ပိဿာ"))
}

func TestSplitSyllables(t *testing.T) {
	input := "ကျွန်တော်က တက္ကသိုလ်ကျောင်းသားပါ။"
	expected := []string{"ကျွန်", "တော်", "က", " ", "တက္က", "သိုလ်", "ကျောင်း", "သား", "ပါ", "။"}
	assert.Equal(t, expected, SplitSyllables(input))
}

func TestParseSyllableStackedConsonant(t *testing.T) {
	// The onset "တ" carries no vowel of its own; the closure table keys off
	// the *next* letter ("က") as top_consonant, so this is a K-geminate
	// stacked under a T onset, not a stacked T.
	syl, n, err := ParseSyllable("တက္က")
	require.NoError(t, err)
	assert.Equal(t, len("တက္က"), n)
	assert.Equal(t, phoneme.T, syl.Consonant.Basic)
	require.NotNil(t, syl.Vowel.Virama)
	assert.Equal(t, phoneme.ViramaK, *syl.Vowel.Virama)
	require.NotNil(t, syl.BottomSyllable)
	assert.Equal(t, phoneme.K, syl.BottomSyllable.Consonant.Basic)
	assert.Equal(t, "takka", syl.ToMLCTS())
}

func TestParseSyllableStackedTConsonant(t *testing.T) {
	// Unlike "တက္က" above, the top_consonant position here is literally "တ"
	// again, so this exercises the ('တ', STACK_SIGN, 'တ') row: a stacked T
	// under a T onset.
	syl, n, err := ParseSyllable("တတ္တ")
	require.NoError(t, err)
	assert.Equal(t, len("တတ္တ"), n)
	assert.Equal(t, phoneme.T, syl.Consonant.Basic)
	require.NotNil(t, syl.Vowel.Virama)
	assert.Equal(t, phoneme.ViramaT, *syl.Vowel.Virama)
	require.NotNil(t, syl.BottomSyllable)
	assert.Equal(t, phoneme.T, syl.BottomSyllable.Consonant.Basic)
	assert.Equal(t, "tatta", syl.ToMLCTS())
}

func TestParseSyllableSimpleAsatFinal(t *testing.T) {
	syl, n, err := ParseSyllable("ကက်")
	require.NoError(t, err)
	assert.Equal(t, len("ကက်"), n)
	require.NotNil(t, syl.Vowel.Virama)
	assert.Equal(t, phoneme.ViramaK, *syl.Vowel.Virama)
	assert.Nil(t, syl.BottomSyllable)
}

func TestParseSyllableNgWithToneMarks(t *testing.T) {
	syl, n, err := ParseSyllable("ငင်:")
	require.NoError(t, err)
	assert.Equal(t, len("ငင်:"), n)
	require.NotNil(t, syl.Vowel.Tone)
	assert.Equal(t, phoneme.High, *syl.Vowel.Tone)
}

func TestParseSyllableRejectsNonConsonant(t *testing.T) {
	_, _, err := ParseSyllable("ာ")
	require.Error(t, err)
}

func TestFromMyanmarRecoversUnparsableSpan(t *testing.T) {
	out := FromMyanmar("ka")
	assert.Equal(t, "ka", out)
}

func TestNormalizeMyanmarEncodingVariant(t *testing.T) {
	assert.Equal(t, "ဈကတေ", normalizeMyanmar("စျကတေ"))
}
