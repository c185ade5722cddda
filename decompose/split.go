package decompose

import "unicode"

// myanmarIndependentVowels are the independent vowel letters that, unlike
// dependent vowel signs, always start a fresh syllable span.
var myanmarIndependentVowels = map[rune]bool{
	'ဣ': true, 'ဤ': true, 'ဥ': true, 'ဦ': true, 'ဧ': true, 'ဩ': true, 'ဪ': true,
}

// myanmarSectionMarks are standalone Myanmar punctuation/marks that each
// start their own one-rune span.
var myanmarSectionMarks = map[rune]bool{
	'၌': true, '၍': true, '၏': true, '၊': true, '။': true,
}

func isMyanmarConsonantLetter(r rune) bool {
	return r >= 'က' && r <= 'အ'
}

func isMyanmarDigit(r rune) bool {
	return r >= '၀' && r <= '၉'
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isASCIIPunct(r rune) bool {
	return (r >= '!' && r <= '/') || (r >= ':' && r <= '@') || (r >= '[' && r <= '`') || (r >= '{' && r <= '~')
}

// isSpanStart reports whether r, given the rune immediately before and after
// it (0 standing for none), begins a fresh syllable span.
func isSpanStart(r, prev, next rune) bool {
	if isMyanmarConsonantLetter(r) {
		return prev != stackSign && next != asat && next != stackSign
	}
	if isASCIIAlnum(r) || isASCIIPunct(r) {
		return true
	}
	if myanmarIndependentVowels[r] || myanmarSectionMarks[r] || isMyanmarDigit(r) {
		return true
	}
	return unicode.IsSpace(r)
}

// SplitSyllables partitions input into syllable spans at every fresh-onset
// boundary (§ isSpanStart). Any input bytes before the first boundary form
// a leading span of their own, so the spans always concatenate back to
// input.
func SplitSyllables(input string) []string {
	rs := []rune(input)
	if len(rs) == 0 {
		return nil
	}
	offsets := make([]int, len(rs)+1)
	b := 0
	for i, r := range rs {
		offsets[i] = b
		b += len(string(r))
	}
	offsets[len(rs)] = b

	var starts []int
	for i, r := range rs {
		var prev, next rune
		if i > 0 {
			prev = rs[i-1]
		}
		if i+1 < len(rs) {
			next = rs[i+1]
		}
		if i == 0 || isSpanStart(r, prev, next) {
			starts = append(starts, offsets[i])
		}
	}
	if len(starts) == 0 {
		return nil
	}

	out := make([]string, 0, len(starts))
	for i, s := range starts {
		end := len(input)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		out = append(out, input[s:end])
	}
	return out
}
