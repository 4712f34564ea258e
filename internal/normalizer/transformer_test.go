package normalizer

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jean-paul", "Jean Paul"},
		{"JEAN-PAUL", "Jean Paul"},
		{"anne-marie de la tour", "Anne Marie De La Tour"},
		{"Jean Paul", "Jean Paul"},
		{"bob", "Bob"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeName(tt.in); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDepartment(t *testing.T) {
	if got := NormalizeDepartment("eng"); got != "ENG" {
		t.Errorf("NormalizeDepartment(eng) = %q, want ENG", got)
	}

	if got := NormalizeDepartment("ENG"); got != "ENG" {
		t.Errorf("NormalizeDepartment(ENG) = %q, want ENG", got)
	}
}

func TestCanonical(t *testing.T) {
	decomposed := "e\u0301"
	if got := Canonical(decomposed); got != "\u00e9" {
		t.Errorf("Canonical(%q) = %q, want %q", decomposed, got, "\u00e9")
	}
}
