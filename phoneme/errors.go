package phoneme

import "errors"

// Sentinel errors returned by the phoneme model and, by extension, the
// tokenizer and decompose packages built on top of it. Wrap with fmt.Errorf
// and %w so callers can match with errors.Is.
var (
	// ErrNotAConsonant is returned when a rune expected to start a syllable
	// is not one of the 34 Myanmar consonant code points.
	ErrNotAConsonant = errors.New("not a Myanmar consonant")

	// ErrIllegalMedialCombination is returned when MedialDiacritic.Combine
	// is asked to combine a pair outside the seven legal compositions.
	ErrIllegalMedialCombination = errors.New("illegal medial diacritic combination")

	// ErrUnknownCluster is returned by the decomposer when a virama/stacked
	// consonant sequence matches no row of the closure table.
	ErrUnknownCluster = errors.New("unknown consonant cluster")

	// ErrUnexpectedEnd is returned when a virama-carrying cluster requires a
	// bottom consonant that is not present in the input.
	ErrUnexpectedEnd = errors.New("unexpected end of input")
)
