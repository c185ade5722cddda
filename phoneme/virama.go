package phoneme

// Virama enumerates the 15 legal syllable-final consonants. Each has a
// mapping back to its onset BasicConsonant for use when it also serves as
// the top of a stacked cluster.
type Virama uint8

const (
	ViramaK Virama = iota
	ViramaG
	ViramaNg
	ViramaC
	ViramaJ
	ViramaNy
	ViramaT
	ViramaHt
	ViramaD
	ViramaN
	ViramaP
	ViramaB
	ViramaM
	ViramaS
	ViramaL
)

var viramaMLCTS = [...]string{
	ViramaK: "k", ViramaG: "g", ViramaNg: "ng", ViramaC: "c", ViramaJ: "j",
	ViramaNy: "ny", ViramaT: "t", ViramaHt: "ht", ViramaD: "d", ViramaN: "n",
	ViramaP: "p", ViramaB: "b", ViramaM: "m", ViramaS: "s", ViramaL: "l",
}

var viramaToConsonant = [...]BasicConsonant{
	ViramaK: K, ViramaG: G, ViramaNg: Ng, ViramaC: C, ViramaJ: J,
	ViramaNy: Ny, ViramaT: T, ViramaHt: Ht, ViramaD: D, ViramaN: N,
	ViramaP: P, ViramaB: B, ViramaM: M, ViramaS: S, ViramaL: L,
}

// ToMLCTS returns the MLCTS letter for this virama.
func (v Virama) ToMLCTS() string {
	return viramaMLCTS[v]
}

// ToBasicConsonant returns the onset consonant that corresponds to this
// virama, for use as the top of a stacked cluster.
func (v Virama) ToBasicConsonant() BasicConsonant {
	return viramaToConsonant[v]
}

func (v Virama) String() string {
	return viramaMLCTS[v]
}

// CreakyOnly reports whether this virama's final is inherently creaky (K, C,
// T, P), meaning the vowel it terminates must not carry an explicit tone.
func (v Virama) CreakyOnly() bool {
	switch v {
	case ViramaK, ViramaC, ViramaT, ViramaP:
		return true
	default:
		return false
	}
}
