package phoneme

// Consonant is the consonant part of a syllable: a basic consonant and an
// optional medial diacritic.
type Consonant struct {
	Basic  BasicConsonant
	Medial *MedialDiacritic
}

// NewConsonant creates a bare consonant with no medial.
func NewConsonant(basic BasicConsonant) Consonant {
	return Consonant{Basic: basic}
}

// NewConsonantWithMedial creates a consonant carrying the given medial.
func NewConsonantWithMedial(basic BasicConsonant, medial MedialDiacritic) Consonant {
	return Consonant{Basic: basic, Medial: &medial}
}

// ToMLCTS renders the consonant, wrapping any H-initial medial's leading "h"
// around the basic letter and appending the remaining medial letters.
func (c Consonant) ToMLCTS() string {
	basic := c.Basic.ToMLCTS()
	if c.Medial == nil {
		return basic
	}
	switch *c.Medial {
	case MedialHrw:
		return "h" + basic + "rw"
	case MedialHyw:
		return "h" + basic + "yw"
	case MedialHw:
		return "h" + basic + "w"
	case MedialHr:
		return "h" + basic + "r"
	case MedialHy:
		return "h" + basic + "y"
	case MedialH:
		return "h" + basic
	case MedialRw:
		return basic + "rw"
	case MedialR:
		return basic + "r"
	case MedialYw:
		return basic + "yw"
	case MedialY:
		return basic + "y"
	case MedialW:
		return basic + "w"
	default:
		return basic
	}
}

// Equal reports whether c and other designate the same consonant.
func (c Consonant) Equal(other Consonant) bool {
	if c.Basic != other.Basic {
		return false
	}
	if (c.Medial == nil) != (other.Medial == nil) {
		return false
	}
	return c.Medial == nil || *c.Medial == *other.Medial
}
