package mlcts

import (
	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/decompose"
	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/phoneme"
	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/tokenizer"
)

// FromMyanmar transliterates Myanmar-script text into MLCTS romanization.
// Spans that fail to parse are passed through unchanged.
func FromMyanmar(text string) string {
	return decompose.FromMyanmar(text)
}

// ParseSyllable consumes one Myanmar syllable starting at byte 0 of span.
func ParseSyllable(span string) (phoneme.Syllable, int, error) {
	return decompose.ParseSyllable(span)
}

// SplitSyllables partitions Myanmar-mixed text into syllable/non-Myanmar
// spans.
func SplitSyllables(text string) []string {
	return decompose.SplitSyllables(text)
}

// Tokenize lexes MLCTS text into a token stream, honoring opts.StrictVirama.
func Tokenize(input string, opts Options) []tokenizer.Token {
	if opts.StrictVirama {
		return tokenizer.TokenizeStrict(input)
	}
	return tokenizer.Tokenize(input)
}

// NewTokenizer constructs a streaming Tokenizer over input, honoring
// opts.StrictVirama.
func NewTokenizer(input string, opts Options) *tokenizer.Tokenizer {
	if opts.StrictVirama {
		return tokenizer.NewStrict(input)
	}
	return tokenizer.New(input)
}

// ToMLCTS renders syl in MLCTS romanization. It is a thin wrapper over
// Syllable.ToMLCTS kept at the façade level so callers need not import
// phoneme directly for the common case.
func ToMLCTS(syl phoneme.Syllable) string {
	return syl.ToMLCTS()
}
