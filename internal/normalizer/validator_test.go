package normalizer

import (
	"strings"
	"testing"
)

type validatorCase struct {
	name       string
	in         string
	want       string
	wantReason Reason
}

func runValidatorCases(t *testing.T, fn FieldValidator, tests []validatorCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := fn(tt.in)

			if res.Reason() != tt.wantReason {
				t.Fatalf("reason = %q, want %q (value %q)", res.Reason(), tt.wantReason, res.Value())
			}

			if tt.wantReason == "" && res.Value() != tt.want {
				t.Errorf("value = %q, want %q", res.Value(), tt.want)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	runValidatorCases(t, ValidateID, []validatorCase{
		{name: "plain", in: "12", want: "12"},
		{name: "leading zeros kept", in: "007", want: "007"},
		{name: "beyond int64", in: "123456789012345678901234567890", want: "123456789012345678901234567890"},
		{name: "empty", in: "", wantReason: ReasonMissing},
		{name: "zero", in: "0", wantReason: ReasonInvalid},
		{name: "all zeros", in: "000", wantReason: ReasonInvalid},
		{name: "negative", in: "-3", wantReason: ReasonInvalid},
		{name: "decimal", in: "1.0", wantReason: ReasonInvalid},
		{name: "letters", in: "A12", wantReason: ReasonInvalid},
		{name: "inner space", in: "1 2", wantReason: ReasonInvalid},
		{name: "non-ascii digit", in: "١٢", wantReason: ReasonInvalid},
	})
}

func TestValidateName(t *testing.T) {
	runValidatorCases(t, ValidateName, []validatorCase{
		{name: "hyphenated", in: "jean-paul", want: "Jean Paul"},
		{name: "upper", in: "ANN", want: "Ann"},
		{name: "two words", in: "mary ann smith", want: "Mary Ann Smith"},
		{name: "mixed case", in: "mCdONALD", want: "Mcdonald"},
		{name: "accented", in: "élodie", want: "Élodie"},
		{name: "decomposed accent", in: "e\u0301lodie", want: "Élodie"},
		{name: "straight apostrophe allowed", in: "O'BRIEN", want: "O'brien"},
		{name: "curly apostrophe allowed", in: "d’arcy", want: "D’arcy"},
		{name: "empty", in: "", wantReason: ReasonMissing},
		{name: "digit", in: "Ann2", wantReason: ReasonInvalid},
		{name: "dot", in: "J. Smith", wantReason: ReasonInvalid},
		{name: "underscore", in: "ann_lee", wantReason: ReasonInvalid},
		{name: "tab", in: "ann\tlee", wantReason: ReasonInvalid},
	})
}

func TestValidateName_ApostropheWordsKeepOneCapital(t *testing.T) {
	res := ValidateName("O'BRIEN")
	if !res.OK() {
		t.Fatalf("ValidateName rejected: %s", res.Reason())
	}

	if got := res.Value(); got != "O'brien" {
		t.Errorf("value = %q, want %q", got, "O'brien")
	}

	res = ValidateName("anne-marie o'neil")
	if got := res.Value(); got != "Anne Marie O'neil" {
		t.Errorf("value = %q, want %q", got, "Anne Marie O'neil")
	}
}

func TestValidateDepartment(t *testing.T) {
	runValidatorCases(t, ValidateDepartment, []validatorCase{
		{name: "lower", in: "eng", want: "ENG"},
		{name: "upper", in: "HR", want: "HR"},
		{name: "mixed", in: "Finance", want: "FINANCE"},
		{name: "accented", in: "recherché", want: "RECHERCHÉ"},
		{name: "empty", in: "", wantReason: ReasonMissing},
		{name: "space", in: "human resources", wantReason: ReasonInvalid},
		{name: "hyphen", in: "r-and-d", wantReason: ReasonInvalid},
		{name: "digit", in: "IT2", wantReason: ReasonInvalid},
		{name: "ampersand", in: "R&D", wantReason: ReasonInvalid},
	})
}

func TestValidateSalary(t *testing.T) {
	runValidatorCases(t, ValidateSalary, []validatorCase{
		{name: "integer", in: "50000", want: "50000"},
		{name: "decimal", in: "1234.56", want: "1234.56"},
		{name: "padded decimal kept verbatim", in: "007.50", want: "007.50"},
		{name: "trailing period", in: "5.", want: "5."},
		{name: "huge integer", in: "99999999999999999999999", want: "99999999999999999999999"},
		{name: "empty", in: "", wantReason: ReasonMissing},
		{name: "zero", in: "0", wantReason: ReasonInvalidRange},
		{name: "zeros", in: "000", wantReason: ReasonInvalidRange},
		{name: "zero decimal", in: "0.00", wantReason: ReasonInvalidRange},
		{name: "below one", in: "0.99", wantReason: ReasonInvalidRange},
		{name: "leading period", in: ".5", wantReason: ReasonInvalidRange},
		{name: "negative", in: "-5", wantReason: ReasonInvalid},
		{name: "currency", in: "$100", wantReason: ReasonInvalid},
		{name: "letters", in: "abc", wantReason: ReasonInvalid},
		{name: "digits then letters", in: "100k", wantReason: ReasonInvalid},
		{name: "thousands separator", in: "1,000", wantReason: ReasonInvalid},
		{name: "lone period", in: ".", wantReason: ReasonInvalid},
		{name: "two periods", in: "1.2.3", wantReason: ReasonInvalid},
		{name: "hex float", in: "0x1.8p1", wantReason: ReasonInvalid},
		{name: "integer exponent", in: "1e5", wantReason: ReasonInvalid},
		{name: "exponent decimal", in: "1.5e3", wantReason: ReasonInvalid},
		{name: "trailing period exponent", in: "1.e5", wantReason: ReasonInvalid},
		{name: "overflowing exponent", in: "1.0e400", wantReason: ReasonInvalid},
		{name: "overflowing decimal", in: strings.Repeat("9", 400) + ".0", wantReason: ReasonInvalid},
	})
}

func TestValidators_Idempotent(t *testing.T) {
	inputs := map[string]struct {
		fn     FieldValidator
		inputs []string
	}{
		"id":         {ValidateID, []string{"1", "0042", "987654321"}},
		"name":       {ValidateName, []string{"jean-paul", "ANN LEE", "élodie", "o'neil"}},
		"department": {ValidateDepartment, []string{"eng", "Hr", "ßales"}},
		"salary":     {ValidateSalary, []string{"100", "007.50", "5."}},
	}

	for name, tc := range inputs {
		t.Run(name, func(t *testing.T) {
			for _, in := range tc.inputs {
				first := tc.fn(in)
				if !first.OK() {
					t.Fatalf("%q rejected: %s", in, first.Reason())
				}

				second := tc.fn(first.Value())
				if !second.OK() || second.Value() != first.Value() {
					t.Errorf("re-validating %q: got %q (%s), want %q", in, second.Value(), second.Reason(), first.Value())
				}
			}
		})
	}
}
