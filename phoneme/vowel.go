package phoneme

// BasicVowel is one of the 7 basic vowel sounds; vowels differing only by
// tone share the same BasicVowel.
type BasicVowel uint8

const (
	VA BasicVowel = iota
	VI
	VU
	VE
	VAi
	VAu
	VUi
)

var basicVowelMLCTS = [...]string{
	VA: "a", VI: "i", VU: "u", VE: "e", VAi: "ai", VAu: "au", VUi: "ui",
}

// ToMLCTS returns the MLCTS spelling of the basic vowel.
func (v BasicVowel) ToMLCTS() string {
	return basicVowelMLCTS[v]
}

func (v BasicVowel) String() string {
	return basicVowelMLCTS[v]
}

// Vowel is the vowel part of a syllable: a basic vowel, an optional virama
// (syllable-final consonant) and an optional tone mark.
type Vowel struct {
	Basic  BasicVowel
	Virama *Virama
	Tone   *Tone
}

// NewVowel creates a bare vowel with no virama or tone.
func NewVowel(basic BasicVowel) Vowel {
	return Vowel{Basic: basic}
}

// NewVowelWithTone creates a vowel carrying the given tone.
func NewVowelWithTone(basic BasicVowel, tone Tone) Vowel {
	return Vowel{Basic: basic, Tone: &tone}
}

// NewVowelWithVirama creates a vowel carrying the given virama and no tone.
func NewVowelWithVirama(basic BasicVowel, virama Virama) Vowel {
	return Vowel{Basic: basic, Virama: &virama}
}

// NewVowelFull creates a vowel with an explicit virama and tone, either of
// which may be nil.
func NewVowelFull(basic BasicVowel, virama *Virama, tone *Tone) Vowel {
	return Vowel{Basic: basic, Virama: virama, Tone: tone}
}

// ToMLCTS concatenates the basic vowel, the virama letter (if any), then the
// tone mark (if any).
func (v Vowel) ToMLCTS() string {
	s := v.Basic.ToMLCTS()
	if v.Virama != nil {
		s += v.Virama.ToMLCTS()
	}
	if v.Tone != nil {
		s += v.Tone.ToMLCTS()
	}
	return s
}

// Equal reports whether v and other are the same vowel.
func (v Vowel) Equal(other Vowel) bool {
	if v.Basic != other.Basic {
		return false
	}
	if (v.Virama == nil) != (other.Virama == nil) {
		return false
	}
	if v.Virama != nil && *v.Virama != *other.Virama {
		return false
	}
	if (v.Tone == nil) != (other.Tone == nil) {
		return false
	}
	return v.Tone == nil || *v.Tone == *other.Tone
}
