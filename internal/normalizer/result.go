package normalizer

import "errors"

// Reason categorizes why a field or row was rejected.
type Reason string

// Rejection reasons.
const (
	ReasonMissing      Reason = "missing"
	ReasonInvalid      Reason = "invalid"
	ReasonInvalidRange Reason = "invalid-range"
	ReasonDuplicate    Reason = "duplicate"
)

// Row rejection errors.
var (
	ErrMissingField    = errors.New("missing field")
	ErrInvalidField    = errors.New("invalid field")
	ErrInvalidRange    = errors.New("value out of range")
	ErrDuplicateRecord = errors.New("duplicate record")
)

// Err returns the sentinel error for the reason.
func (r Reason) Err() error {
	switch r {
	case ReasonMissing:
		return ErrMissingField
	case ReasonInvalidRange:
		return ErrInvalidRange
	case ReasonDuplicate:
		return ErrDuplicateRecord
	default:
		return ErrInvalidField
	}
}

// Result is the outcome of validating one field: either an accepted
// normalized value or a rejection reason.
type Result struct {
	value  string
	reason Reason
}

// Accepted wraps a normalized value.
func Accepted(value string) Result {
	return Result{value: value}
}

// Rejected wraps a rejection reason.
func Rejected(reason Reason) Result {
	return Result{reason: reason}
}

// OK reports whether the field was accepted.
func (r Result) OK() bool {
	return r.reason == ""
}

// Value returns the normalized value; empty when rejected.
func (r Result) Value() string {
	return r.value
}

// Reason returns the rejection reason; empty when accepted.
func (r Result) Reason() Reason {
	return r.reason
}
