// Command generate regenerates internal/testdata/syllables.csv from a small
// embedded list of Myanmar/MLCTS syllable pairs. It is a narrow, offline
// stand-in for the original dictionary-scraping generator: rather than
// downloading and running a JS romanization dictionary, it derives every
// CSV field directly from this repository's own decompose/phoneme
// packages, so the fixture always agrees with the implementation it tests.
package main

import (
	"fmt"
	"os"

	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/decompose"
	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/internal/corpus"
)

//go:generate go run .

// seedSyllables is the embedded Myanmar syllable list this generator
// expands into full fixture rows. Each entry's input_class documents why
// it was picked: a phoneme-model feature it exercises.
var seedSyllables = []struct {
	class string
	my    string
}{
	{"basic", "က"},
	{"basic", "န"},
	{"basic", "မ"},
	{"collapse", "ဋ"},
	{"collapse", "ထ"},
	{"collapse", "ဍ"},
	{"collapse", "ဏ"},
	{"collapse", "ဉ"},
	{"collapse", "ဠ"},
	{"medial", "ကျ"},
	{"medial", "ကြ"},
	{"medial", "ကွ"},
	{"medial", "ကှ"},
	{"medial", "ကျွ"},
	{"medial", "ကြွ"},
	{"vowel", "ကာ"},
	{"vowel", "ကား"},
	{"vowel", "ကယ်"},
	{"vowel", "ကဲ"},
	{"vowel", "ကဲ့"},
	{"vowel", "ကော"},
	{"vowel", "ကော်"},
	{"vowel", "ကော့"},
	{"vowel", "ကူ"},
	{"vowel", "ကူး"},
	{"vowel", "ကိူ"},
	{"vowel", "ကိူး"},
	{"vowel", "ကိူ့"},
	{"vowel", "ကီ"},
	{"vowel", "ကီး"},
	{"vowel", "ကိ"},
	{"vowel", "ကေ"},
	{"vowel", "ကေး"},
	{"vowel", "ကေ့"},
	{"virama", "ကက်"},
	{"virama", "ကစ်"},
	{"virama", "ကည်"},
	{"virama", "ကဋ်"},
	{"virama", "ကန်"},
	{"virama", "ကပ်"},
	{"virama", "ကမ်"},
	// The asat-plus-tone closure rows for ng/ny/n/m match only the literal
	// ASCII ':' and '.' bytes, not the real Myanmar tone marks း and ့ — a
	// quirk carried over from the source table, not something a real tone
	// mark triggers.
	{"virama-tone-quirk", "ကန်:"},
	{"virama-tone-quirk", "ကမ်."},
	{"stacked", "တက္က"},
	{"stacked", "ဂက္ခ"},
	{"stacked", "ငင်္ဂ"},
	{"ligature", "ပိဿာ"},
}

func main() {
	rows := make([]corpus.Row, 0, len(seedSyllables))
	for _, s := range seedSyllables {
		syl, n, err := decompose.ParseSyllable(s.my)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generate: skipping %q: %v\n", s.my, err)
			continue
		}
		if n != len([]byte(s.my)) {
			fmt.Fprintf(os.Stderr, "generate: skipping %q: partial parse (%d/%d bytes)\n", s.my, n, len(s.my))
			continue
		}

		row := corpus.Row{
			InputClass:      s.class,
			MyanmarSyllable: s.my,
			MLCTSSyllable:   syl.ToMLCTS(),
			Consonant:       syl.Consonant.Basic.String(),
			Vowel:           syl.Vowel.Basic.String(),
		}
		if syl.Consonant.Medial != nil {
			row.MedialDiacritic = syl.Consonant.Medial.String()
		}
		if syl.Vowel.Virama != nil {
			row.Virama = syl.Vowel.Virama.String()
		}
		if syl.Vowel.Tone != nil {
			row.Tone = syl.Vowel.Tone.String()
		}
		rows = append(rows, row)
	}

	out, err := os.Create("../../testdata/syllables.csv")
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := corpus.Write(out, rows); err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)
		os.Exit(1)
	}
}
