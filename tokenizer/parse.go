package tokenizer

import (
	"strings"

	"github.com/tassa-yoniso-manasi-karoto/mlctsgo/phoneme"
)

// normalize applies the two silent input corrections the upstream romanizer
// relies on: nhg -> hng and nhy -> hny.
func normalize(input string) string {
	input = strings.ReplaceAll(input, "nhg", "hng")
	input = strings.ReplaceAll(input, "nhy", "hny")
	return input
}

// parseSyllable attempts the longest legal MLCTS syllable match at the
// start of s. It implements the grammar of spec.md §4.2:
//
//	syllable := opt_h_prefix consonant_letter opt_medial_tail vowel_letters opt_virama opt_tone
//
// When s begins with 'h', two readings are possible: 'h' as the first
// letter of an h-digraph consonant (hk, hc, ht, hp), or 'h' as the leading
// H component of a medial cluster in front of some other consonant. Both
// are attempted; disambiguation policy: try the digraph consonant reading
// first, then the H-medial reading, and keep whichever produces the
// longer total match (ties keep the digraph reading).
func parseSyllable(s string, strict bool) (phoneme.Syllable, int, bool) {
	digraphSyl, digraphLen, digraphOK := parseSyllableBody(s, false, strict)

	if !strings.HasPrefix(s, "h") {
		return digraphSyl, digraphLen, digraphOK
	}

	medialSyl, medialLen, medialOK := parseSyllableBody(s, true, strict)

	switch {
	case digraphOK && medialOK:
		if medialLen > digraphLen {
			return medialSyl, medialLen, true
		}
		return digraphSyl, digraphLen, true
	case digraphOK:
		return digraphSyl, digraphLen, true
	case medialOK:
		return medialSyl, medialLen, true
	default:
		return phoneme.Syllable{}, 0, false
	}
}

// parseSyllableBody parses a syllable body, optionally forcing the leading
// byte to be consumed as an H-medial prefix instead of being part of the
// consonant letter.
func parseSyllableBody(s string, forceHPrefix bool, strict bool) (phoneme.Syllable, int, bool) {
	pos := 0
	var hPrefix *phoneme.MedialDiacritic
	if forceHPrefix {
		if !strings.HasPrefix(s, "h") {
			return phoneme.Syllable{}, 0, false
		}
		pos = 1
		h := phoneme.MedialH
		hPrefix = &h
	}

	basic, clen, ok := matchConsonantLetter(s[pos:])
	if !ok {
		return phoneme.Syllable{}, 0, false
	}
	pos += clen

	tailMedial, mlen := matchMedialTail(s[pos:])
	pos += mlen

	medial, err := phoneme.CombineOptional(hPrefix, tailMedial)
	if err != nil {
		return phoneme.Syllable{}, 0, false
	}

	var consonant phoneme.Consonant
	if medial != nil {
		consonant = phoneme.NewConsonantWithMedial(basic, *medial)
	} else {
		consonant = phoneme.NewConsonant(basic)
	}

	vowelBasic, vlen := matchVowelLetters(s[pos:])
	pos += vlen

	vowel := phoneme.NewVowel(vowelBasic)

	// opt_virama: a virama-legal consonant letter. In strict mode it is
	// accepted only when followed by a tone mark, whitespace, input end, or
	// another syllable start; permissive mode accepts it unconditionally
	// (see viramaLookaheadOK).
	rest := s[pos:]
	if v, vlen, ok := matchVirama(rest); ok {
		lookahead := rest[vlen:]
		if viramaLookaheadOK(lookahead, strict) {
			// Reject a tone mark after a creaky-only final (K, C, T, P):
			// backtrack by not consuming the virama at all.
			startsTone := strings.HasPrefix(lookahead, ":") || strings.HasPrefix(lookahead, ".")
			if !(v.CreakyOnly() && startsTone) {
				vv := v
				vowel.Virama = &vv
				pos += vlen
			}
		}
	}

	// opt_tone: a trailing tone mark, legal with or without a preceding
	// virama.
	if strings.HasPrefix(s[pos:], ":") {
		t := phoneme.High
		vowel.Tone = &t
		pos++
	} else if strings.HasPrefix(s[pos:], ".") {
		t := phoneme.Creaky
		vowel.Tone = &t
		pos++
	}

	return phoneme.NewSyllable(consonant, vowel, nil), pos, true
}

// viramaLookaheadOK reports whether the text following a candidate virama
// letter is consistent with that letter actually being a syllable-final
// virama rather than the onset of the next syllable. In permissive
// (non-strict) mode every candidate is accepted, favoring the longest
// match; strict mode only accepts the unambiguous cases.
func viramaLookaheadOK(lookahead string, strict bool) bool {
	if !strict {
		return true
	}
	if lookahead == "" {
		return true
	}
	if lookahead[0] == ':' || lookahead[0] == '.' {
		return true
	}
	if isASCIISpace(lookahead[0]) {
		return true
	}
	return startsNewSyllable(lookahead)
}
