package funcs

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize maps any spelling of a function name to its canonical key.
//
// CamelCase word boundaries become underscores and the result is lower case:
//
//	DayOfMonth   -> day_of_month
//	DAY_OF_MONTH -> day_of_month
//	Avg, AVG     -> avg
//	ACos         -> acos
//	Log10        -> log10
//
// A boundary is an upper-case letter directly after a lower-case letter.
// Upper-case runes without a lower-case mapping never open a boundary, so
// Normalize(Normalize(x)) == Normalize(x) for every input. Strings are NFC
// normalized first so that composed and decomposed spellings agree.
func Normalize(name string) string {
	s := strings.TrimSpace(norm.NFC.String(name))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + 4)

	prevUpper := false
	first := true
	for _, r := range s {
		switch {
		case isCased(r):
			if !first && !prevUpper {
				b.WriteByte('_')
			}
			prevUpper = true
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsLetter(r):
			prevUpper = false
			b.WriteRune(r)
		default:
			prevUpper = true
			b.WriteRune(r)
		}
		first = false
	}

	return norm.NFC.String(b.String())
}

// isCased reports whether r is an upper-case letter that lower-cases to a
// different rune.
func isCased(r rune) bool {
	return unicode.IsUpper(r) && unicode.ToLower(r) != r
}
