package normalizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Canonical brings text to Unicode NFC so a letter and its combining
// accents are checked as one character.
func Canonical(s string) string {
	return norm.NFC.String(s)
}

// NormalizeName replaces hyphens with spaces and title-cases every word.
func NormalizeName(s string) string {
	s = strings.ReplaceAll(s, "-", " ")

	return cases.Title(language.Und).String(s)
}

// NormalizeDepartment upper-cases the department code.
func NormalizeDepartment(s string) string {
	return cases.Upper(language.Und).String(s)
}
