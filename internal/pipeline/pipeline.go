// Package pipeline runs one read, validate, dedupe and write pass over an
// employee file.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"empclean/internal/models"
	"empclean/internal/normalizer"
	"empclean/internal/report"
	"empclean/internal/source"
	"empclean/internal/writer"
)

// ErrRunAborted wraps any failure that stopped a run before output was produced.
var ErrRunAborted = errors.New("run aborted")

// Stats counts what happened to the rows of one run.
type Stats struct {
	ByField    map[string]int
	RowsRead   int
	Kept       int
	Missing    int
	Invalid    int
	OutOfRange int
	Duplicates int
}

// Rejected returns the number of rows dropped by field validation.
func (s *Stats) Rejected() int {
	return s.Missing + s.Invalid + s.OutOfRange
}

func (s *Stats) count(err error) {
	var fe *normalizer.FieldError
	if errors.As(err, &fe) {
		if s.ByField == nil {
			s.ByField = make(map[string]int)
		}

		s.ByField[fe.Field]++
	}

	switch {
	case errors.Is(err, normalizer.ErrMissingField):
		s.Missing++
	case errors.Is(err, normalizer.ErrInvalidRange):
		s.OutOfRange++
	default:
		s.Invalid++
	}
}

// Result is the outcome of a run.
type Result struct {
	Records    []models.Employee
	Input      string
	OutputPath string
	Stats      Stats
	Written    bool
}

// Summary renders the run statistics as a table.
func (r *Result) Summary() *report.Table {
	t := &report.Table{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"rows read", strconv.Itoa(r.Stats.RowsRead)},
			{"kept", strconv.Itoa(r.Stats.Kept)},
			{"missing field", strconv.Itoa(r.Stats.Missing)},
			{"invalid field", strconv.Itoa(r.Stats.Invalid)},
			{"salary out of range", strconv.Itoa(r.Stats.OutOfRange)},
			{"duplicates", strconv.Itoa(r.Stats.Duplicates)},
		},
	}

	for _, f := range models.RequiredFields {
		if n := r.Stats.ByField[f]; n > 0 {
			t.Rows = append(t.Rows, []string{"rejected on " + f, strconv.Itoa(n)})
		}
	}

	return t
}

// Pipeline wires the reader, processor, deduplicator and writer.
type Pipeline struct {
	reader   *source.Reader
	writer   *writer.Writer
	reporter normalizer.Reporter
}

// New creates a pipeline. A nil reporter discards events.
func New(reader *source.Reader, w *writer.Writer, reporter normalizer.Reporter) *Pipeline {
	if reporter == nil {
		reporter = normalizer.NopReporter{}
	}

	return &Pipeline{
		reader:   reader,
		writer:   w,
		reporter: reporter,
	}
}

// Clean reads input and returns the validated, deduplicated records without
// writing anything. When the file cannot be read the run is aborted: the
// result is empty and the error wraps ErrRunAborted.
func (p *Pipeline) Clean(ctx context.Context, input string) (*Result, error) {
	res := &Result{Input: input, Records: []models.Employee{}}

	p.reporter.Info(normalizer.Event{Message: "processing file", Path: input})

	table, err := p.reader.ReadFile(ctx, input)
	if err != nil {
		p.abort(err)

		return res, fmt.Errorf("%w: %w", ErrRunAborted, err)
	}

	processor := normalizer.NewProcessor(p.reporter)
	dedup := normalizer.NewDeduplicator(table.Columns())

	for _, raw := range table.Rows {
		if err := ctx.Err(); err != nil {
			p.abort(err)

			return &Result{Input: input, Records: []models.Employee{}}, fmt.Errorf("%w: %w", ErrRunAborted, err)
		}

		res.Stats.RowsRead++

		key, err := processor.Process(raw)
		if err != nil {
			res.Stats.count(err)

			continue
		}

		if !dedup.Add(key) {
			res.Stats.Duplicates++

			processor.ReportDuplicate(raw)
		}
	}

	res.Records = dedup.Records()
	res.Stats.Kept = dedup.Len()

	return res, nil
}

// Run cleans input and writes the records to output. Nothing is written when
// the run aborts; a write failure is returned with the cleaned result.
func (p *Pipeline) Run(ctx context.Context, input, output string) (*Result, error) {
	p.reporter.Info(normalizer.Event{Message: "pipeline started"})

	res, err := p.Clean(ctx, input)
	if err != nil {
		return res, err
	}

	p.reporter.Info(normalizer.Event{Message: "saving cleaned records", Path: output, Format: p.writer.Format()})

	if err := p.writer.WriteFile(ctx, output, res.Records); err != nil {
		p.reporter.Error(normalizer.Event{Message: "failed to write output", Path: output, Err: err})

		return res, fmt.Errorf("write %s: %w", output, err)
	}

	res.OutputPath = output
	res.Written = true

	p.reporter.Info(normalizer.Event{Message: "pipeline completed", Path: output})

	return res, nil
}

func (p *Pipeline) abort(err error) {
	switch {
	case errors.Is(err, source.ErrSourceNotFound):
		p.reporter.Error(normalizer.Event{Message: "input file does not exist", Err: err})
	default:
		p.reporter.Error(normalizer.Event{Message: "unexpected failure", Err: err})
	}
}
