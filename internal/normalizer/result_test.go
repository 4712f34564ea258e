package normalizer

import (
	"errors"
	"testing"
)

func TestResult(t *testing.T) {
	ok := Accepted("ENG")
	if !ok.OK() || ok.Value() != "ENG" || ok.Reason() != "" {
		t.Errorf("Accepted = %+v", ok)
	}

	rej := Rejected(ReasonMissing)
	if rej.OK() || rej.Value() != "" || rej.Reason() != ReasonMissing {
		t.Errorf("Rejected = %+v", rej)
	}
}

func TestReason_Err(t *testing.T) {
	tests := []struct {
		reason Reason
		want   error
	}{
		{ReasonMissing, ErrMissingField},
		{ReasonInvalid, ErrInvalidField},
		{ReasonInvalidRange, ErrInvalidRange},
		{ReasonDuplicate, ErrDuplicateRecord},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			if !errors.Is(tt.reason.Err(), tt.want) {
				t.Errorf("Err() = %v, want %v", tt.reason.Err(), tt.want)
			}
		})
	}
}
