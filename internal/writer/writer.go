// Package writer serializes cleaned employee records to a document.
package writer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"empclean/internal/models"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
	FormatTOON  = "toon"
)

// Writer errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrLockTimeout       = errors.New("could not acquire output lock")
)

// Options configures a Writer.
type Options struct {
	Format string
	Indent int
	// LockTimeout bounds the wait for the output lock; zero disables locking.
	LockTimeout time.Duration
}

// Writer encodes records and writes them atomically.
type Writer struct {
	opts Options
}

// New creates a writer. An empty format means JSON.
func New(opts Options) *Writer {
	if opts.Format == "" {
		opts.Format = FormatJSON
	}

	return &Writer{opts: opts}
}

// Format returns the configured output format.
func (w *Writer) Format() string {
	return w.opts.Format
}

// Encode writes records to out in the configured format.
func (w *Writer) Encode(out io.Writer, records []models.Employee) error {
	if records == nil {
		records = []models.Employee{}
	}

	switch w.opts.Format {
	case FormatJSON:
		return encodeJSON(out, records, w.opts.Indent)
	case FormatJSONL:
		return encodeJSONL(out, records)
	case FormatYAML:
		return encodeYAML(out, records, w.opts.Indent)
	case FormatTOON:
		return encodeTOON(out, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, w.opts.Format)
	}
}

// WriteFile encodes records into path. The document is written to a temp
// file in the same directory, synced, then renamed over path.
func (w *Writer) WriteFile(ctx context.Context, path string, records []models.Employee) error {
	var buf bytes.Buffer
	if err := w.Encode(&buf, records); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if w.opts.LockTimeout > 0 {
		unlock, err := lock(ctx, path+".lock", w.opts.LockTimeout)
		if err != nil {
			return err
		}
		defer unlock()
	}

	return writeAtomic(path, buf.Bytes())
}

func lock(ctx context.Context, lockPath string, timeout time.Duration) (func(), error) {
	fl := flock.New(lockPath)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := fl.TryLockContext(ctx, 10*time.Millisecond)
	if err != nil || !locked {
		return nil, fmt.Errorf("%w: %s", ErrLockTimeout, lockPath)
	}

	return func() { _ = fl.Unlock() }, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true

	return nil
}

func encodeJSON(out io.Writer, records []models.Employee, indent int) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	return nil
}

func encodeJSONL(out io.Writer, records []models.Employee) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for i, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
	}

	return nil
}
