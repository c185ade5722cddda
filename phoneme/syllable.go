package phoneme

// BaseSyllable is a syllable that cannot itself carry a stacked bottom: a
// consonant paired with a vowel.
type BaseSyllable struct {
	Consonant Consonant
	Vowel     Vowel
}

// ToSyllable promotes a BaseSyllable to a top-level Syllable with no bottom.
func (b BaseSyllable) ToSyllable() Syllable {
	return Syllable{Consonant: b.Consonant, Vowel: b.Vowel}
}

// ToMLCTS renders the base syllable's consonant then vowel.
func (b BaseSyllable) ToMLCTS() string {
	return b.Consonant.ToMLCTS() + b.Vowel.ToMLCTS()
}

// Syllable is a full Myanmar/MLCTS syllable: a consonant, a vowel, and an
// optional bottom syllable present only when vowel.Virama joins the two.
type Syllable struct {
	Consonant    Consonant
	Vowel        Vowel
	BottomSyllable *BaseSyllable
}

// NewSyllable creates a syllable with the given consonant, vowel, and
// optional bottom. bottom must be nil unless vowel carries a virama.
func NewSyllable(consonant Consonant, vowel Vowel, bottom *BaseSyllable) Syllable {
	return Syllable{Consonant: consonant, Vowel: vowel, BottomSyllable: bottom}
}

// NewSimpleSyllable creates a syllable with the implicit 'A' onset and the
// given vowel; shorthand for NewSyllable(NewConsonant(A), vowel, nil).
func NewSimpleSyllable(vowel Vowel) Syllable {
	return Syllable{Consonant: NewConsonant(A), Vowel: vowel}
}

// ToBaseSyllable drops the bottom, converting a Syllable into a BaseSyllable.
func (s Syllable) ToBaseSyllable() BaseSyllable {
	return BaseSyllable{Consonant: s.Consonant, Vowel: s.Vowel}
}

// ToMLCTS concatenates consonant, vowel, then the recursive MLCTS of the
// bottom syllable (if any), with no separator.
func (s Syllable) ToMLCTS() string {
	out := s.Consonant.ToMLCTS() + s.Vowel.ToMLCTS()
	if s.BottomSyllable != nil {
		out += s.BottomSyllable.ToMLCTS()
	}
	return out
}

// Equal reports whether s and other are the same syllable, recursively.
func (s Syllable) Equal(other Syllable) bool {
	if !s.Consonant.Equal(other.Consonant) || !s.Vowel.Equal(other.Vowel) {
		return false
	}
	if (s.BottomSyllable == nil) != (other.BottomSyllable == nil) {
		return false
	}
	if s.BottomSyllable == nil {
		return true
	}
	return s.BottomSyllable.Consonant.Equal(other.BottomSyllable.Consonant) &&
		s.BottomSyllable.Vowel.Equal(other.BottomSyllable.Vowel)
}
