// Package tokenizer implements the greedy, longest-match lexer that turns a
// stream of ASCII-range MLCTS text into a sequence of Token values: fully
// decomposed syllables, whitespace runs, unknown runs, or end-of-input.
package tokenizer

import "github.com/tassa-yoniso-manasi-karoto/mlctsgo/phoneme"

// TokenKind classifies a Token.
type TokenKind int

const (
	// KindSyllable marks a token whose Syllable field holds the decomposed
	// MLCTS syllable.
	KindSyllable TokenKind = iota
	// KindWhitespace marks a maximal run of ASCII whitespace.
	KindWhitespace
	// KindUnknown marks a run of input matched by none of the rules above.
	KindUnknown
	// KindEndOfInput marks the cursor having reached the end of input. Once
	// emitted, every subsequent call to NextToken returns it again with
	// Len == 0.
	KindEndOfInput
)

func (k TokenKind) String() string {
	switch k {
	case KindSyllable:
		return "Syllable"
	case KindWhitespace:
		return "Whitespace"
	case KindUnknown:
		return "Unknown"
	case KindEndOfInput:
		return "EndOfInput"
	default:
		return "?"
	}
}

// Token is one lexical unit of MLCTS input. Start and Len are byte offsets
// into the original input string; Syllable is populated only when
// Kind == KindSyllable.
type Token struct {
	Kind     TokenKind
	Syllable phoneme.Syllable
	Start    int
	Len      int
}
