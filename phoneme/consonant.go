// Package phoneme provides the sum types and product types shared by the
// MLCTS tokenizer and the Myanmar-script decomposer: consonants, medials,
// tones, viramas, vowels, and the composite Consonant/Vowel/Syllable values.
// Every value here is immutable once constructed and cheaply copyable; there
// is no I/O and no shared mutable state.
package phoneme

import "fmt"

// BasicConsonant is one of the 27 distinct MLCTS consonant letters. Several
// Myanmar code points collapse onto the same variant (e.g. both တ and ဋ
// decode to T); serializing back to Myanmar is therefore not attempted here.
type BasicConsonant uint8

const (
	K BasicConsonant = iota
	Hk
	G
	Gh
	Ng
	C
	Hc
	J
	Jh
	Ny
	T
	Ht
	D
	Dh
	N
	P
	Hp
	B
	Bh
	M
	Y
	R
	L
	W
	S
	H
	A
)

var basicConsonantMLCTS = [...]string{
	K: "k", Hk: "hk", G: "g", Gh: "gh", Ng: "ng",
	C: "c", Hc: "hc", J: "j", Jh: "jh", Ny: "ny",
	T: "t", Ht: "ht", D: "d", Dh: "dh", N: "n",
	P: "p", Hp: "hp", B: "b", Bh: "bh", M: "m",
	Y: "y", R: "r", L: "l", W: "w", S: "s", H: "h", A: "a",
}

// ToMLCTS returns the MLCTS spelling of c. Total: every BasicConsonant has a
// fixed 1:1 entry in the table.
func (c BasicConsonant) ToMLCTS() string {
	return basicConsonantMLCTS[c]
}

func (c BasicConsonant) String() string {
	return basicConsonantMLCTS[c]
}

// myanmarConsonants maps a Myanmar consonant code point to the BasicConsonant
// it decodes to. Several code points share a target variant, matching the
// Myanmar Language Commission's collapsed Latin spelling.
var myanmarConsonants = map[rune]BasicConsonant{
	'က': K, 'ခ': Hk, 'ဂ': G, 'ဃ': Gh, 'င': Ng,
	'စ': C, 'ဆ': Hc, 'ဇ': J, 'ဈ': Jh,
	'ဉ': Ny, 'ည': Ny,
	'ဋ': T, 'ဌ': Ht, 'ဍ': D, 'ဎ': Dh, 'ဏ': N,
	'တ': T, 'ထ': Ht, 'ဒ': D, 'ဓ': Dh, 'န': N,
	'ပ': P, 'ဖ': Hp, 'ဗ': B, 'ဘ': Bh, 'မ': M,
	'ယ': Y, 'ရ': R, 'လ': L, 'ဝ': W, 'သ': S, 'ဟ': H,
	'ဠ': L,
	'အ': A,
}

// FromMyanmar converts a Myanmar code point into a BasicConsonant. It is a
// total function over the 34 consonant code points (က to အ) and fails with
// ErrNotAConsonant elsewhere.
func FromMyanmar(c rune) (BasicConsonant, error) {
	bc, ok := myanmarConsonants[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotAConsonant, c)
	}
	return bc, nil
}
