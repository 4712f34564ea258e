package normalizer

import (
	"empclean/internal/logger"
)

// Event describes one reportable occurrence during a run.
type Event struct {
	Err     error
	Message string
	Path    string
	Format  string
	Field   string
	Value   string
	Record  string
	Reason  Reason
	Line    int
}

// Reporter receives pipeline events by severity.
type Reporter interface {
	Info(ev Event)
	Warn(ev Event)
	Error(ev Event)
}

// NopReporter drops every event.
type NopReporter struct{}

// Info implements Reporter.
func (NopReporter) Info(Event) {}

// Warn implements Reporter.
func (NopReporter) Warn(Event) {}

// Error implements Reporter.
func (NopReporter) Error(Event) {}

// LogReporter writes events to a structured logger.
type LogReporter struct {
	log *logger.Logger
}

// NewLogReporter creates a reporter backed by log.
func NewLogReporter(log *logger.Logger) *LogReporter {
	return &LogReporter{log: log}
}

// Info implements Reporter.
func (r *LogReporter) Info(ev Event) {
	r.log.Info(ev.Message, ev.attrs()...)
}

// Warn implements Reporter.
func (r *LogReporter) Warn(ev Event) {
	r.log.Warn(ev.Message, ev.attrs()...)
}

// Error implements Reporter.
func (r *LogReporter) Error(ev Event) {
	r.log.Error(ev.Message, ev.attrs()...)
}

func (ev Event) attrs() []any {
	var args []any

	if ev.Path != "" {
		args = append(args, "path", ev.Path)
	}

	if ev.Format != "" {
		args = append(args, "format", ev.Format)
	}

	if ev.Line > 0 {
		args = append(args, "line", ev.Line)
	}

	if ev.Field != "" {
		args = append(args, "field", ev.Field, "value", ev.Value)
	}

	if ev.Reason != "" {
		args = append(args, "reason", string(ev.Reason))
	}

	if ev.Record != "" {
		args = append(args, "record", ev.Record)
	}

	if ev.Err != nil {
		args = append(args, "error", ev.Err.Error())
	}

	return args
}
