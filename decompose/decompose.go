// Package decompose implements the Myanmar-script side of the transliteration
// core: reading native Unicode Myanmar text code point by code point and
// recovering the same Syllable model the tokenizer package builds from MLCTS
// text.
package decompose

import (
	"fmt"
	"unicode/utf8"

	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/mlctslog"
	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/phoneme"
)

const (
	asat      = '်'
	stackSign = '္'
	medialY   = 'ျ'
	medialR   = 'ြ'
	medialW   = 'ွ'
	medialH   = 'ှ'
	ligatureS = 'ဿ'
)

// normalizeMyanmar rewrites the encoding variant စျ into the canonical
// precomposed ဈ before parsing.
func normalizeMyanmar(input string) string {
	out := make([]rune, 0, len(input))
	rs := []rune(input)
	for i := 0; i < len(rs); i++ {
		if rs[i] == 'စ' && i+1 < len(rs) && rs[i+1] == 'ျ' {
			out = append(out, 'ဈ')
			i++
			continue
		}
		out = append(out, rs[i])
	}
	return string(out)
}

// decodeAt returns the rune starting at byte offset pos in s and its width
// in bytes, or (0, 0) past the end of s — the EOF sentinel used throughout
// this package's lookahead logic.
func decodeAt(s string, pos int) (rune, int) {
	if pos >= len(s) {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(s[pos:])
	return r, size
}

// parseConsonant reads one Myanmar consonant letter and its trailing medial
// cluster, returning the Consonant and the number of bytes consumed.
func parseConsonant(input string) (phoneme.Consonant, int, error) {
	r0, l0 := decodeAt(input, 0)
	if l0 == 0 {
		return phoneme.Consonant{}, 0, fmt.Errorf("parseConsonant: %w", phoneme.ErrUnexpectedEnd)
	}
	basic, err := phoneme.FromMyanmar(r0)
	if err != nil {
		return phoneme.Consonant{}, 0, err
	}
	if basic == phoneme.A {
		return phoneme.NewConsonant(phoneme.A), l0, nil
	}

	p1, l1 := decodeAt(input, l0)
	p2, l2 := decodeAt(input, l0+l1)
	p3, l3 := decodeAt(input, l0+l1+l2)

	switch {
	case p1 == medialR && p2 == medialW && p3 == medialH:
		return phoneme.NewConsonantWithMedial(basic, phoneme.MedialHrw), l0 + l1 + l2 + l3, nil
	case p1 == medialY && p2 == medialW && p3 == medialH:
		return phoneme.NewConsonantWithMedial(basic, phoneme.MedialHyw), l0 + l1 + l2 + l3, nil
	case p1 == medialW && p2 == medialH:
		return phoneme.NewConsonantWithMedial(basic, phoneme.MedialHw), l0 + l1 + l2, nil
	case p1 == medialR && p2 == medialW:
		return phoneme.NewConsonantWithMedial(basic, phoneme.MedialRw), l0 + l1 + l2, nil
	case p1 == medialY && p2 == medialW:
		return phoneme.NewConsonantWithMedial(basic, phoneme.MedialYw), l0 + l1 + l2, nil
	case p1 == medialR && p2 == medialH:
		return phoneme.NewConsonantWithMedial(basic, phoneme.MedialHr), l0 + l1 + l2, nil
	case p1 == medialY && p2 == medialH:
		return phoneme.NewConsonantWithMedial(basic, phoneme.MedialHy), l0 + l1 + l2, nil
	case p1 == medialW:
		return phoneme.NewConsonantWithMedial(basic, phoneme.MedialW), l0 + l1, nil
	case p1 == medialR:
		return phoneme.NewConsonantWithMedial(basic, phoneme.MedialR), l0 + l1, nil
	case p1 == medialY:
		return phoneme.NewConsonantWithMedial(basic, phoneme.MedialY), l0 + l1, nil
	case p1 == medialH:
		return phoneme.NewConsonantWithMedial(basic, phoneme.MedialH), l0 + l1, nil
	default:
		return phoneme.NewConsonant(basic), l0, nil
	}
}

// ParseSyllable consumes one syllable starting at byte 0 of span, returning
// the decoded Syllable and the number of bytes consumed.
func ParseSyllable(span string) (phoneme.Syllable, int, error) {
	consonant, consumed, err := parseConsonant(span)
	if err != nil {
		return phoneme.Syllable{}, 0, err
	}
	if consumed == len(span) {
		return phoneme.NewSyllable(consonant, phoneme.NewVowel(phoneme.VA), nil), consumed, nil
	}

	vowel, vlen, terminal := parseVowel(span[consumed:])
	if terminal {
		return phoneme.NewSyllable(consonant, vowel, nil), consumed + vlen, nil
	}

	return parseClosure(span, consonant, vowel, consumed+vlen)
}

// parseVowel dispatches on the 1-3 code points following the consonant,
// matching the longest legal vowel shape. terminal reports whether the
// match fully decided the vowel (including any tone) with no virama/bottom
// to follow; when false, the caller continues into the closure parser with
// the partial vowel already set.
func parseVowel(s string) (vowel phoneme.Vowel, consumed int, terminal bool) {
	v1, l1 := decodeAt(s, 0)
	v2, l2 := decodeAt(s, l1)
	v3, l3 := decodeAt(s, l1+l2)

	const (
		vowA       = 'ာ'
		vowAiH     = 'ဲ'
		vowI       = 'ီ'
		vowICreaky = 'ိ'
		vowUCreaky = 'ု'
		vowU       = 'ူ'
		vowE       = 'ေ'
		toneHigh   = 'း'
		toneCreaky = '့'
	)

	high := phoneme.High
	creaky := phoneme.Creaky

	switch {
	case v1 == vowA && v2 == toneHigh && v3 == 0:
		return phoneme.NewVowelFull(phoneme.VA, nil, &high), l1 + l2, true
	case v1 == vowA && v2 == 0:
		return phoneme.NewVowel(phoneme.VA), l1, true
	case v1 == vowA:
		return phoneme.NewVowel(phoneme.VA), l1, false

	case v1 == 'ယ' && v2 == asat && v3 == 0:
		return phoneme.NewVowel(phoneme.VAi), l1 + l2, true
	case v1 == vowAiH && v2 == toneCreaky && v3 == 0:
		return phoneme.NewVowelFull(phoneme.VAi, nil, &creaky), l1 + l2, true
	case v1 == vowAiH && v2 == 0:
		return phoneme.NewVowelFull(phoneme.VAi, nil, &high), l1, true

	case v1 == vowE && v2 == vowA && v3 == asat:
		return phoneme.NewVowel(phoneme.VAu), l1 + l2 + l3, true
	case v1 == vowE && v2 == vowA && v3 == toneCreaky:
		return phoneme.NewVowelFull(phoneme.VAu, nil, &creaky), l1 + l2 + l3, true
	case v1 == vowE && v2 == vowA && v3 == 0:
		return phoneme.NewVowel(phoneme.VAu), l1 + l2, true
	case v1 == vowE && v2 == vowA:
		return phoneme.NewVowel(phoneme.VAu), l1 + l2, false

	case v1 == vowU && v2 == 0:
		return phoneme.NewVowel(phoneme.VU), l1, true
	case v1 == vowU && v2 == toneHigh && v3 == 0:
		return phoneme.NewVowelFull(phoneme.VU, nil, &high), l1 + l2, true
	case v1 == vowU && v2 == toneCreaky && v3 == 0:
		// Matches the source decomposer's behavior: the creaky mark here is
		// not absorbed into the vowel and is left for the caller.
		return phoneme.NewVowel(phoneme.VU), l1, true
	case v1 == vowUCreaky:
		return phoneme.NewVowel(phoneme.VU), l1, false

	case v1 == vowICreaky && v2 == vowU && v3 == toneHigh:
		return phoneme.NewVowelFull(phoneme.VUi, nil, &high), l1 + l2 + l3, true
	case v1 == vowICreaky && v2 == vowU && v3 == toneCreaky:
		return phoneme.NewVowelFull(phoneme.VUi, nil, &creaky), l1 + l2 + l3, true
	case v1 == vowICreaky && v2 == vowU && v3 == 0:
		return phoneme.NewVowel(phoneme.VUi), l1 + l2, true
	case v1 == vowICreaky && v2 == vowU:
		return phoneme.NewVowel(phoneme.VUi), l1 + l2, false

	case v1 == vowI && v2 == 0:
		return phoneme.NewVowel(phoneme.VI), l1, true
	case v1 == vowI && v2 == toneHigh && v3 == 0:
		return phoneme.NewVowelFull(phoneme.VI, nil, &high), l1 + l2, true
	case v1 == vowICreaky && v2 == 0:
		return phoneme.NewVowel(phoneme.VI), l1, true
	case v1 == vowICreaky:
		return phoneme.NewVowel(phoneme.VI), l1, false

	case v1 == vowE && v2 == toneHigh && v3 == 0:
		return phoneme.NewVowelFull(phoneme.VE, nil, &high), l1 + l2, true
	case v1 == vowE && v2 == toneCreaky && v3 == 0:
		return phoneme.NewVowelFull(phoneme.VE, nil, &creaky), l1 + l2, true
	case v1 == vowE && v2 == 0:
		return phoneme.NewVowel(phoneme.VE), l1, true
	case v1 == vowE:
		return phoneme.NewVowel(phoneme.VE), l1, false

	default:
		return phoneme.NewVowel(phoneme.VA), 0, false
	}
}

// parseClosure resolves the virama and any stacked bottom consonant once the
// vowel sub-parser has left the cursor at consumed bytes into span.
func parseClosure(span string, consonant phoneme.Consonant, vowel phoneme.Vowel, consumed int) (phoneme.Syllable, int, error) {
	rest := span[consumed:]
	r0, l0 := decodeAt(rest, 0)

	if r0 == ligatureS {
		// ဿ stands for သ္သ: a virama-S final with a bottom S consonant, both
		// folded into the single ligature byte sequence. We splice a
		// synthetic "သ" onto whatever follows the ligature so the recursive
		// parse can recover the bottom's own vowel/closure, then subtract
		// that synthetic prefix back out of the byte count — the ligature
		// itself, not the synthetic prefix, accounts for those bytes in the
		// original input.
		const syntheticPrefix = "သ"
		v := phoneme.ViramaS
		vowel.Virama = &v
		expanded := syntheticPrefix + rest[l0:]
		bottomSyl, blen, err := ParseSyllable(expanded)
		if err != nil {
			return phoneme.Syllable{}, 0, fmt.Errorf("parseClosure: ဿ expansion: %w", phoneme.ErrUnknownCluster)
		}
		base := bottomSyl.ToBaseSyllable()
		return phoneme.NewSyllable(consonant, vowel, &base), consumed + l0 + (blen - len(syntheticPrefix)), nil
	}

	r1, l1 := decodeAt(rest, l0)
	r2, l2 := decodeAt(rest, l0+l1)
	r3, _ := decodeAt(rest, l0+l1+l2)

	recurseBottom := func(skip int) (*phoneme.BaseSyllable, int, error) {
		bottomSyl, blen, err := ParseSyllable(rest[skip:])
		if err != nil {
			return nil, 0, err
		}
		base := bottomSyl.ToBaseSyllable()
		return &base, blen, nil
	}

	fail := func() (phoneme.Syllable, int, error) {
		return phoneme.Syllable{}, 0, fmt.Errorf("parseClosure: %w: %q", phoneme.ErrUnknownCluster, rest)
	}

	simpleFinal := func(v phoneme.Virama, extra int) (phoneme.Syllable, int, error) {
		vv := v
		vowel.Virama = &vv
		return phoneme.NewSyllable(consonant, vowel, nil), consumed + l0 + l1 + extra, nil
	}

	finalWithTone := func(v phoneme.Virama, tone phoneme.Tone, signLen int) (phoneme.Syllable, int, error) {
		vv := v
		tt := tone
		vowel.Virama = &vv
		vowel.Tone = &tt
		return phoneme.NewSyllable(consonant, vowel, nil), consumed + l0 + l1 + signLen, nil
	}

	// stacked recurses into the bottom consonant starting at byte offset skip
	// into rest — the position immediately after the stack sign, never past
	// the bottom consonant itself.
	stacked := func(v phoneme.Virama, skip int) (phoneme.Syllable, int, error) {
		vv := v
		vowel.Virama = &vv
		bottom, blen, err := recurseBottom(skip)
		if err != nil {
			return phoneme.Syllable{}, 0, err
		}
		return phoneme.NewSyllable(consonant, vowel, bottom), consumed + skip + blen, nil
	}

	switch r0 {
	case 'က':
		switch {
		case r1 == asat && r2 == 0:
			return simpleFinal(phoneme.ViramaK, 0)
		case r1 == stackSign && (r2 == 'က' || r2 == 'ခ'):
			return stacked(phoneme.ViramaK, l0+l1)
		}
	case 'ဂ':
		if r1 == stackSign && (r2 == 'ဂ' || r2 == 'ဃ') {
			return stacked(phoneme.ViramaG, l0+l1)
		}
	case 'င':
		switch {
		case r1 == asat && r2 == stackSign:
			if r3 == 0 {
				return phoneme.Syllable{}, 0, fmt.Errorf("parseClosure: %w", phoneme.ErrUnexpectedEnd)
			}
			// The asat here is a literal byte of the ng-stacking spelling,
			// not a separate simple-final asat; the bottom consonant sits
			// one rune further in than the direct stack-sign cases above.
			return stacked(phoneme.ViramaNg, l0+l1+l2)
		case r1 == asat && r2 == ':' && decodeLenOf(rest, l0+l1+l2) == 0:
			return finalWithTone(phoneme.ViramaNg, phoneme.High, l2)
		case r1 == asat && r2 == '.' && decodeLenOf(rest, l0+l1+l2) == 0:
			return finalWithTone(phoneme.ViramaNg, phoneme.Creaky, l2)
		}
	case 'စ':
		switch {
		case r1 == asat && r2 == 0:
			return simpleFinal(phoneme.ViramaC, 0)
		case r1 == stackSign && (r2 == 'စ' || r2 == 'ဆ'):
			return stacked(phoneme.ViramaC, l0+l1)
		}
	case 'ဇ':
		if r1 == stackSign && (r2 == 'ဇ' || r2 == 'ဈ') {
			return stacked(phoneme.ViramaJ, l0+l1)
		}
	case 'ည', 'ဉ':
		switch {
		case r1 == asat && r2 == 0:
			return simpleFinal(phoneme.ViramaNy, 0)
		case r1 == asat && r2 == '.' && decodeLenOf(rest, l0+l1+l2) == 0:
			return finalWithTone(phoneme.ViramaNy, phoneme.Creaky, l2)
		case r1 == asat && r2 == ':' && decodeLenOf(rest, l0+l1+l2) == 0:
			return finalWithTone(phoneme.ViramaNy, phoneme.High, l2)
		case r1 == stackSign && (r2 == 'စ' || r2 == 'ဇ'):
			return stacked(phoneme.ViramaNy, l0+l1)
		}
	case 'ဋ':
		switch {
		case r1 == asat && r2 == 0:
			return simpleFinal(phoneme.ViramaT, 0)
		case r1 == stackSign && (r2 == 'ဋ' || r2 == 'ဌ'):
			return stacked(phoneme.ViramaT, l0+l1)
		}
	case 'ဍ':
		if r1 == stackSign && (r2 == 'ဍ' || r2 == 'ဎ') {
			return stacked(phoneme.ViramaD, l0+l1)
		}
	case 'ဏ':
		switch {
		case r1 == asat && r2 == 0:
			return simpleFinal(phoneme.ViramaN, 0)
		case r1 == stackSign && r2 == 'ဍ':
			return stacked(phoneme.ViramaN, l0+l1)
		}
	case 'တ':
		switch {
		case r1 == asat && r2 == 0:
			return simpleFinal(phoneme.ViramaT, 0)
		case r1 == stackSign && r2 == 'တ':
			return stacked(phoneme.ViramaT, l0+l1)
		}
	case 'ထ':
		if r1 == stackSign && r2 == 'ထ' {
			return stacked(phoneme.ViramaHt, l0+l1)
		}
	case 'ဒ':
		if r1 == stackSign && r2 == 'ဒ' {
			return stacked(phoneme.ViramaD, l0+l1)
		}
	case 'န':
		switch {
		case r1 == asat && r2 == 0:
			return simpleFinal(phoneme.ViramaN, 0)
		case r1 == asat && r2 == ':' && decodeLenOf(rest, l0+l1+l2) == 0:
			return finalWithTone(phoneme.ViramaN, phoneme.High, l2)
		case r1 == asat && r2 == '.' && decodeLenOf(rest, l0+l1+l2) == 0:
			return finalWithTone(phoneme.ViramaN, phoneme.Creaky, l2)
		case r1 == stackSign && (r2 == 'တ' || r2 == 'ထ' || r2 == 'ဒ' || r2 == 'ဓ' || r2 == 'န'):
			return stacked(phoneme.ViramaN, l0+l1)
		}
	case 'ပ':
		switch {
		// Source quirk (documented): the source advances the cursor twice
		// past a terminal asat here; the cursor only needs to move past the
		// single asat byte.
		case r1 == asat && r2 == 0:
			return simpleFinal(phoneme.ViramaP, 0)
		case r1 == stackSign && r2 == 'ပ':
			return stacked(phoneme.ViramaP, l0+l1)
		}
	case 'ဗ':
		if r1 == stackSign && (r2 == 'ဗ' || r2 == 'ဘ') {
			return stacked(phoneme.ViramaB, l0+l1)
		}
	case 'မ':
		switch {
		case r1 == asat && r2 == 0:
			return simpleFinal(phoneme.ViramaM, 0)
		case r1 == asat && r2 == ':' && decodeLenOf(rest, l0+l1+l2) == 0:
			return finalWithTone(phoneme.ViramaM, phoneme.High, l2)
		case r1 == asat && r2 == '.' && decodeLenOf(rest, l0+l1+l2) == 0:
			return finalWithTone(phoneme.ViramaM, phoneme.Creaky, l2)
		case r1 == stackSign && (r2 == 'ပ' || r2 == 'ဗ' || r2 == 'ဘ' || r2 == 'မ'):
			return stacked(phoneme.ViramaM, l0+l1)
		}
	case 'လ':
		if r1 == stackSign && r2 == 'လ' {
			return stacked(phoneme.ViramaL, l0+l1)
		}
	}
	return fail()
}

func decodeLenOf(s string, pos int) int {
	_, l := decodeAt(s, pos)
	return l
}

// FromMyanmar transliterates Myanmar-script text into MLCTS. Spans that fail
// to parse are passed through unchanged.
func FromMyanmar(text string) string {
	text = normalizeMyanmar(text)
	spans := SplitSyllables(text)
	out := make([]byte, 0, len(text))
	for _, span := range spans {
		syl, n, err := ParseSyllable(span)
		if err != nil || n != len(span) {
			if err != nil {
				mlctslog.Log.Debug().Err(err).Str("span", span).Msg("decompose: passing span through unparsed")
			}
			out = append(out, span...)
			continue
		}
		out = append(out, syl.ToMLCTS()...)
	}
	return string(out)
}
