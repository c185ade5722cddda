package mlcts

import (
	"unicode"

	iso "github.com/barbashov/iso639-3"
)

// myanmarScriptLanguages lists the ISO 639-3 codes of languages whose
// primary orthography is the Myanmar script.
var myanmarScriptLanguages = map[string]bool{
	"mya": true, // Burmese
	"mnw": true, // Mon
	"shn": true, // Shan
	"kyu": true, // Western Kayah
	"blk": true, // Pa'O
	"rki": true, // Rakhine
}

// IsMyanmarRune reports whether r falls in the Unicode Myanmar block.
func IsMyanmarRune(r rune) bool {
	return unicode.Is(unicode.Myanmar, r)
}

// LanguageUsesMyanmarScript normalizes lang through any ISO 639 form (639-1,
// 639-2, or 639-3) and reports whether that language's primary script is
// Myanmar, the same normalization the teacher's GetUnicodeRangesFromLang
// performs via iso.FromAnyCode.
func LanguageUsesMyanmarScript(lang string) bool {
	obj := iso.FromAnyCode(lang)
	if obj == nil {
		return false
	}
	return myanmarScriptLanguages[obj.Part3]
}

// DetectScript reports whether text should be treated as Myanmar-script
// input given opts.Language (if set) and, failing that, a majority-rune
// heuristic over text itself.
func DetectScript(text string, opts Options) bool {
	if opts.Language != "" {
		return LanguageUsesMyanmarScript(opts.Language)
	}
	var myanmar, other int
	for _, r := range text {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			continue
		}
		if IsMyanmarRune(r) {
			myanmar++
		} else {
			other++
		}
	}
	return myanmar > other
}
