// Package normalizer validates, normalizes and deduplicates employee records.
package normalizer

import (
	"fmt"
	"strings"

	"empclean/internal/models"
)

// FieldError describes the first field that caused a row to be dropped.
type FieldError struct {
	Field  string
	Value  string
	Reason Reason
	Line   int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d: %s %q: %s", e.Line, e.Field, e.Value, e.Reason)
}

// Unwrap returns the sentinel error matching the reason.
func (e *FieldError) Unwrap() error {
	return e.Reason.Err()
}

type fieldCheck struct {
	validate FieldValidator
	field    string
}

// Processor validates rows field by field in a fixed order.
type Processor struct {
	reporter Reporter
	checks   []fieldCheck
}

// NewProcessor creates a processor reporting rejected rows to reporter.
func NewProcessor(reporter Reporter) *Processor {
	if reporter == nil {
		reporter = NopReporter{}
	}

	return &Processor{
		reporter: reporter,
		checks: []fieldCheck{
			{field: models.FieldID, validate: ValidateID},
			{field: models.FieldName, validate: ValidateName},
			{field: models.FieldDepartment, validate: ValidateDepartment},
			{field: models.FieldSalary, validate: ValidateSalary},
		},
	}
}

// Process validates one row and returns its dedup key. The row is rejected
// on the first field that fails; the returned error is a *FieldError.
func (p *Processor) Process(raw models.RawRecord) (models.DedupKey, error) {
	var key models.DedupKey

	for i, check := range p.checks {
		value := strings.TrimSpace(raw.Get(check.field))

		res := check.validate(value)
		if !res.OK() {
			fe := &FieldError{
				Field:  check.field,
				Value:  value,
				Reason: res.Reason(),
				Line:   raw.Line,
			}
			p.reportRejection(fe, raw)

			return models.DedupKey{}, fe
		}

		key[i] = res.Value()
	}

	return key, nil
}

// ReportDuplicate records that a row normalized to an already kept key.
func (p *Processor) ReportDuplicate(raw models.RawRecord) {
	p.reporter.Info(Event{
		Message: "duplicate record skipped",
		Reason:  ReasonDuplicate,
		Line:    raw.Line,
		Record:  raw.String(),
	})
}

func (p *Processor) reportRejection(fe *FieldError, raw models.RawRecord) {
	ev := Event{
		Field:  fe.Field,
		Value:  fe.Value,
		Reason: fe.Reason,
		Line:   fe.Line,
		Record: raw.String(),
	}

	switch fe.Reason {
	case ReasonMissing:
		ev.Message = "skipped record: missing " + fe.Field
		p.reporter.Warn(ev)
	case ReasonInvalidRange:
		ev.Message = "skipped record: " + fe.Field + " out of range"
		p.reporter.Warn(ev)
	default:
		ev.Message = "skipped record: invalid " + fe.Field
		p.reporter.Error(ev)
	}
}
