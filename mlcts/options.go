// Package mlcts is the top-level convenience API wiring the phoneme,
// tokenizer, and decompose packages together: ToMLCTS, FromMyanmar,
// Tokenize, SplitSyllables, plus script detection for callers that don't
// already know whether their input is Myanmar script.
package mlcts

// Options configures the façade-level conversions. The zero value is the
// default, permissive behavior.
type Options struct {
	// StrictVirama accepts a virama-legal letter as a syllable final only
	// when it is followed by a tone mark, whitespace, end of input, or a
	// letter that can start a syllable; otherwise the letter is left to
	// start the next syllable. The default takes every such letter as a
	// final.
	StrictVirama bool

	// CoalesceUnknown is not read by any function: Tokenize always merges
	// adjacent Unknown tokens into a single run, and the Tokenizer returned
	// by NewTokenizer never does.
	CoalesceUnknown bool

	// Language is an ISO 639 code (any of the 639-1/2/3 forms) describing
	// the input's declared language, used by DetectScript to
	// decide whether text should be run through the Myanmar-script path at
	// all. Empty means "detect purely from the input's runes".
	Language string
}
