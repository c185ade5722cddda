package tokenizer

import (
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/phoneme"
)

// consonantDigraphs lists the two-letter MLCTS consonant spellings, tried
// before any single-letter match.
var consonantDigraphs = []struct {
	letters string
	basic   phoneme.BasicConsonant
}{
	{"hk", phoneme.Hk},
	{"hc", phoneme.Hc},
	{"ht", phoneme.Ht},
	{"hp", phoneme.Hp},
	{"bh", phoneme.Bh},
	{"dh", phoneme.Dh},
	{"gh", phoneme.Gh},
	{"jh", phoneme.Jh},
	{"ny", phoneme.Ny},
	{"ng", phoneme.Ng},
}

var consonantSingles = map[byte]phoneme.BasicConsonant{
	'k': phoneme.K, 'g': phoneme.G, 'c': phoneme.C, 'j': phoneme.J,
	't': phoneme.T, 'd': phoneme.D, 'n': phoneme.N, 'p': phoneme.P,
	'b': phoneme.B, 'm': phoneme.M, 'y': phoneme.Y, 'r': phoneme.R,
	'l': phoneme.L, 'w': phoneme.W, 's': phoneme.S, 'h': phoneme.H,
	'a': phoneme.A,
}

// matchConsonantLetter finds the longest MLCTS consonant spelling at the
// start of s: two-letter digraphs take precedence over single letters.
func matchConsonantLetter(s string) (phoneme.BasicConsonant, int, bool) {
	if len(s) >= 2 {
		for _, d := range consonantDigraphs {
			if strings.HasPrefix(s, d.letters) {
				return d.basic, 2, true
			}
		}
	}
	if len(s) >= 1 {
		if bc, ok := consonantSingles[s[0]]; ok {
			return bc, 1, true
		}
	}
	return 0, 0, false
}

// matchMedialTail matches an optional medial suffix of {y, r, w}: any of y
// or r first (mutually exclusive), then an optional w.
func matchMedialTail(s string) (*phoneme.MedialDiacritic, int) {
	two := func(prefix string, m phoneme.MedialDiacritic) (*phoneme.MedialDiacritic, int, bool) {
		if strings.HasPrefix(s, prefix) {
			v := m
			return &v, len(prefix), true
		}
		return nil, 0, false
	}
	if m, l, ok := two("yw", phoneme.MedialYw); ok {
		return m, l
	}
	if m, l, ok := two("rw", phoneme.MedialRw); ok {
		return m, l
	}
	if m, l, ok := two("y", phoneme.MedialY); ok {
		return m, l
	}
	if m, l, ok := two("r", phoneme.MedialR); ok {
		return m, l
	}
	if m, l, ok := two("w", phoneme.MedialW); ok {
		return m, l
	}
	return nil, 0
}

// vowelSpellings is tried longest-match-first: two-letter vowels before
// single-letter ones.
var vowelSpellings = []struct {
	letters string
	basic   phoneme.BasicVowel
}{
	{"ai", phoneme.VAi},
	{"au", phoneme.VAu},
	{"ui", phoneme.VUi},
	{"a", phoneme.VA},
	{"i", phoneme.VI},
	{"u", phoneme.VU},
	{"e", phoneme.VE},
}

// matchVowelLetters finds the longest MLCTS vowel spelling at the start of
// s. If none matches, the implicit vowel A is assumed with zero length.
func matchVowelLetters(s string) (phoneme.BasicVowel, int) {
	for _, v := range vowelSpellings {
		if strings.HasPrefix(s, v.letters) {
			return v.basic, len(v.letters)
		}
	}
	return phoneme.VA, 0
}

var viramaSpellings = []struct {
	letters string
	virama  phoneme.Virama
}{
	{"ng", phoneme.ViramaNg},
	{"ny", phoneme.ViramaNy},
	{"ht", phoneme.ViramaHt},
	{"k", phoneme.ViramaK},
	{"g", phoneme.ViramaG},
	{"c", phoneme.ViramaC},
	{"j", phoneme.ViramaJ},
	{"t", phoneme.ViramaT},
	{"d", phoneme.ViramaD},
	{"n", phoneme.ViramaN},
	{"p", phoneme.ViramaP},
	{"b", phoneme.ViramaB},
	{"m", phoneme.ViramaM},
	{"s", phoneme.ViramaS},
	{"l", phoneme.ViramaL},
}

// matchVirama finds the longest virama-legal consonant spelling at the
// start of s. The caller is responsible for checking the lookahead rule
// that decides whether this letter is actually a virama or the start of the
// next syllable.
func matchVirama(s string) (phoneme.Virama, int, bool) {
	for _, v := range viramaSpellings {
		if strings.HasPrefix(s, v.letters) {
			return v.virama, len(v.letters), true
		}
	}
	return 0, 0, false
}

// startsNewSyllable reports whether s begins with a valid MLCTS consonant
// letter, i.e. could start a fresh syllable.
func startsNewSyllable(s string) bool {
	_, _, ok := matchConsonantLetter(s)
	return ok
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
