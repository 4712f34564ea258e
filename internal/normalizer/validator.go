package normalizer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	salaryPrefix   = regexp.MustCompile(`^[0-9.]+`)
	decimalLiteral = regexp.MustCompile(`^[0-9]*\.[0-9]*$`)
)

// FieldValidator maps a trimmed raw value to a tagged result.
type FieldValidator func(raw string) Result

// ValidateID accepts positive decimal identifiers and keeps them verbatim,
// leading zeros included.
func ValidateID(raw string) Result {
	if raw == "" {
		return Rejected(ReasonMissing)
	}

	if !isDigits(raw) || !hasNonZeroDigit(raw) {
		return Rejected(ReasonInvalid)
	}

	return Accepted(raw)
}

// ValidateName accepts letters, apostrophes (' and ’), hyphens and spaces.
func ValidateName(raw string) Result {
	if raw == "" {
		return Rejected(ReasonMissing)
	}

	s := Canonical(raw)
	for _, r := range s {
		if !isNameRune(r) {
			return Rejected(ReasonInvalid)
		}
	}

	return Accepted(NormalizeName(s))
}

// ValidateDepartment accepts letters only.
func ValidateDepartment(raw string) Result {
	if raw == "" {
		return Rejected(ReasonMissing)
	}

	s := Canonical(raw)
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return Rejected(ReasonInvalid)
		}
	}

	return Accepted(NormalizeDepartment(s))
}

// ValidateSalary accepts positive integer or decimal amounts and returns the
// original string untouched. Amounts below one are out of range.
func ValidateSalary(raw string) Result {
	if raw == "" {
		return Rejected(ReasonMissing)
	}

	if !salaryPrefix.MatchString(raw) {
		return Rejected(ReasonInvalid)
	}

	if strings.Contains(raw, ".") {
		if !decimalLiteral.MatchString(raw) {
			return Rejected(ReasonInvalid)
		}

		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsInf(f, 0) {
			return Rejected(ReasonInvalid)
		}

		if math.Trunc(f) <= 0 {
			return Rejected(ReasonInvalidRange)
		}

		return Accepted(raw)
	}

	if !isDigits(raw) {
		return Rejected(ReasonInvalid)
	}

	if !hasNonZeroDigit(raw) {
		return Rejected(ReasonInvalidRange)
	}

	return Accepted(raw)
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\'' || r == '’' || r == '-' || r == ' '
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// hasNonZeroDigit reports whether a digit string denotes a value above zero.
func hasNonZeroDigit(s string) bool {
	return strings.TrimLeft(s, "0") != ""
}
