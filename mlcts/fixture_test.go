package mlcts

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/internal/corpus"
)

// loadFixture reads the shared syllable fixture once per test function.
func loadFixture(t *testing.T) []corpus.Row {
	t.Helper()
	f, err := os.Open("../internal/testdata/syllables.csv")
	require.NoError(t, err)
	defer f.Close()

	rows, err := corpus.Load(f)
	require.NoError(t, err)
	return rows
}

// TestFixtureMyanmarToMLCTS checks that decomposing each fixture row's
// Myanmar syllable reproduces its recorded MLCTS spelling, consonant and
// vowel fields.
func TestFixtureMyanmarToMLCTS(t *testing.T) {
	for _, row := range loadFixture(t) {
		row := row
		t.Run(row.InputClass+"/"+row.MyanmarSyllable, func(t *testing.T) {
			syl, n, err := ParseSyllable(row.MyanmarSyllable)
			require.NoError(t, err, corpus.DiffGraphemes(row.MyanmarSyllable, row.MyanmarSyllable))
			assert.Equal(t, len(row.MyanmarSyllable), n, "partial parse of %q", row.MyanmarSyllable)
			assert.Equal(t, row.MLCTSSyllable, syl.ToMLCTS())
			assert.Equal(t, row.Consonant, syl.Consonant.Basic.String())
			assert.Equal(t, row.Vowel, syl.Vowel.Basic.String())
		})
	}
}

// TestFixtureMLCTSTokenizesBack checks that tokenizing each fixture row's
// MLCTS spelling reproduces it exactly under a parse/print round trip. A
// stacked or ligature syllable's MLCTS spelling has no single-token
// equivalent on the MLCTS side (the grammar has no notion of a "bottom"
// syllable; stacking is purely a Myanmar-script reading), so it tokenizes
// as more than one syllable — the round trip is checked over the
// concatenation, not token count.
func TestFixtureMLCTSTokenizesBack(t *testing.T) {
	for _, row := range loadFixture(t) {
		row := row
		t.Run(row.InputClass+"/"+row.MLCTSSyllable, func(t *testing.T) {
			toks := Tokenize(row.MLCTSSyllable, Options{})
			require.NotEmpty(t, toks)
			var rebuilt string
			for _, tok := range toks {
				rebuilt += tok.Syllable.ToMLCTS()
			}
			assert.Equal(t, row.MLCTSSyllable, rebuilt)
		})
	}
}
