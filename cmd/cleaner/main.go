// Package main provides the cleaner command-line tool for validating and
// deduplicating employee records.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"empclean/internal/config"
	"empclean/internal/logger"
	"empclean/internal/normalizer"
	"empclean/internal/pipeline"
	"empclean/internal/source"
	"empclean/internal/writer"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// stderrAlias as a log file sends logs to stderr.
const stderrAlias = "-"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cleaner", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to YAML config file (optional)")
	inputPath := fs.String("input", "", "Path to input CSV file (default employees.csv)")
	outputPath := fs.String("output", "", "Path to output file (default: input name with the format's extension)")
	format := fs.String("format", "", "Output format: json, jsonl, yaml, toon")
	delimiter := fs.String("delimiter", "", `Column delimiter (use \t for tab)`)
	logFile := fs.String("log-file", "", `Log file, appended to ("-" for stderr)`)
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "Log format: text, json")
	quiet := fs.Bool("quiet", false, "Do not print the summary table")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "❌ %v\n", err)
			return exitUsage
		}

		cfg = loaded
	}

	applyOverrides(cfg, overrides{
		input:     *inputPath,
		output:    *outputPath,
		format:    *format,
		delimiter: *delimiter,
		logFile:   *logFile,
		logLevel:  *logLevel,
		logFormat: *logFormat,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "❌ invalid configuration: %v\n", err)
		return exitUsage
	}

	logOut := stderr

	if cfg.Logging.File != "" && cfg.Logging.File != stderrAlias {
		f, err := logger.OpenFile(cfg.Logging.File)
		if err != nil {
			fmt.Fprintf(stderr, "❌ %v\n", err)
			return exitUsage
		}
		defer f.Close()

		logOut = f
	}

	log := logger.New(logOut, cfg.Logging.Level, cfg.Logging.Format).With("run_id", uuid.NewString())
	log.Debug("configuration loaded", "config", cfg.String())

	delim, err := cfg.Input.DelimiterRune()
	if err != nil {
		fmt.Fprintf(stderr, "❌ invalid configuration: %v\n", err)
		return exitUsage
	}

	p := pipeline.New(
		source.NewReader(delim),
		writer.New(writer.Options{
			Format:      cfg.Output.Format,
			Indent:      cfg.Output.Indent,
			LockTimeout: cfg.Output.GetLockTimeout(),
		}),
		normalizer.NewLogReporter(log),
	)

	output := cfg.GetOutputPath()
	fmt.Fprintf(stdout, "📂 Reading: %s\n", cfg.Input.Path)

	res, err := p.Run(ctx, cfg.Input.Path, output)
	if err != nil {
		if errors.Is(err, source.ErrSourceNotFound) {
			fmt.Fprintf(stderr, "❌ File: %s doesn't exist.\n", cfg.Input.Path)
		} else {
			fmt.Fprintf(stderr, "❌ %v\n", err)
		}

		return exitFailed
	}

	if !*quiet {
		if err := res.Summary().Render(stdout); err != nil {
			fmt.Fprintf(stderr, "❌ failed to print summary: %v\n", err)
			return exitFailed
		}
	}

	fmt.Fprintf(stdout, "✅ Saved %d records to: %s\n", len(res.Records), res.OutputPath)

	return exitOK
}

type overrides struct {
	input     string
	output    string
	format    string
	delimiter string
	logFile   string
	logLevel  string
	logFormat string
}

// applyOverrides copies every non-empty flag value onto cfg.
func applyOverrides(cfg *config.Config, o overrides) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.Input.Path, o.input)
	set(&cfg.Output.Path, o.output)
	set(&cfg.Output.Format, o.format)
	set(&cfg.Input.Delimiter, o.delimiter)
	set(&cfg.Logging.File, o.logFile)
	set(&cfg.Logging.Level, o.logLevel)
	set(&cfg.Logging.Format, o.logFormat)
}
