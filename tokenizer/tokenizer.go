package tokenizer

import "unicode/utf8"

// Tokenizer scans MLCTS text into a sequence of Tokens. It is a single-pass,
// non-backtracking cursor over the normalized input: once constructed, the
// nhg/nhy corrections have already been applied, so all Start/Len offsets
// are relative to the normalized string, not the caller's original one.
type Tokenizer struct {
	input  string
	pos    int
	done   bool
	strict bool
}

// New creates a Tokenizer over input, after applying the silent nhg->hng,
// nhy->hny corrections. It uses the permissive (non-strict) virama
// disambiguation policy: see NewStrict.
func New(input string) *Tokenizer {
	return &Tokenizer{input: normalize(input)}
}

// NewStrict creates a Tokenizer that takes a virama-legal letter as a
// syllable final only when the text after it passes viramaLookaheadOK's
// strict check; otherwise the letter starts the next syllable. This backs
// mlcts.Options.StrictVirama.
func NewStrict(input string) *Tokenizer {
	return &Tokenizer{input: normalize(input), strict: true}
}

// Input returns the normalized text the tokenizer is scanning.
func (t *Tokenizer) Input() string {
	return t.input
}

// NextToken returns the next token in the stream. Once the end of input is
// reached it keeps returning a KindEndOfInput token with Len == 0.
func (t *Tokenizer) NextToken() Token {
	if t.done {
		return Token{Kind: KindEndOfInput, Start: t.pos, Len: 0}
	}
	if t.pos >= len(t.input) {
		t.done = true
		return Token{Kind: KindEndOfInput, Start: t.pos, Len: 0}
	}

	start := t.pos
	rest := t.input[start:]

	if isASCIISpace(rest[0]) {
		n := 0
		for n < len(rest) && isASCIISpace(rest[n]) {
			n++
		}
		t.pos += n
		return Token{Kind: KindWhitespace, Start: start, Len: n}
	}

	if syl, n, ok := parseSyllable(rest, t.strict); ok && n > 0 {
		t.pos += n
		return Token{Kind: KindSyllable, Syllable: syl, Start: start, Len: n}
	}

	_, n := utf8.DecodeRuneInString(rest)
	t.pos += n
	return Token{Kind: KindUnknown, Start: start, Len: n}
}

// Tokenize is a convenience wrapper running a permissive Tokenizer to
// completion over input and coalescing adjacent Unknown tokens into a
// single run, per the rule that an unrecognized span should surface as one
// token rather than a run of single-rune ones.
func Tokenize(input string) []Token {
	return tokenizeWith(New(input))
}

// TokenizeStrict is Tokenize using the strict virama disambiguation policy.
func TokenizeStrict(input string) []Token {
	return tokenizeWith(NewStrict(input))
}

func tokenizeWith(tok *Tokenizer) []Token {
	var out []Token
	for {
		tk := tok.NextToken()
		if tk.Kind == KindEndOfInput {
			break
		}
		if tk.Kind == KindUnknown && len(out) > 0 {
			last := &out[len(out)-1]
			if last.Kind == KindUnknown && last.Start+last.Len == tk.Start {
				last.Len += tk.Len
				continue
			}
		}
		out = append(out, tk)
	}
	return out
}
