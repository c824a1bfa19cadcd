// Package file appends classified safepoint events to an NDJSON file, one
// event per line, followed by a {"summary": ...} record per run.
package file

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hejijunhao/vmcat/internal/model"
	"github.com/hejijunhao/vmcat/internal/output"
)

const (
	defaultBufSize    = 64 * 1024 // 64KB
	defaultMaxBackups = 5
)

var errClosed = errors.New("file output: closed")

// Option configures a file Output.
type Option func(*Output)

// WithMaxSize rotates the file once appending a record would take it past
// bytes. 0 (default) disables rotation. A single record larger than bytes is
// still written whole.
func WithMaxSize(bytes int64) Option {
	return func(o *Output) { o.maxSize = bytes }
}

// WithMaxBackups sets how many rotated files are kept. Default: 5.
func WithMaxBackups(n int) Option {
	return func(o *Output) {
		if n > 0 {
			o.maxBackups = n
		}
	}
}

// WithBufSize sets the write buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// summaryRecord wraps the run summary so it can be told apart from events
// in the same NDJSON stream.
type summaryRecord struct {
	Summary model.Summary `json:"summary"`
}

// Output is safe for concurrent use.
type Output struct {
	path       string
	verbosity  output.Verbosity
	maxSize    int64
	maxBackups int
	bufSize    int

	mu     sync.Mutex
	f      *os.File
	w      *bufio.Writer
	size   int64 // bytes in the current file, buffered included
	closed bool
}

// New opens path for appending, creating it if needed. Records from earlier
// runs are kept.
func New(path string, verbosity output.Verbosity, opts ...Option) (*Output, error) {
	o := &Output{
		path:       path,
		verbosity:  verbosity,
		maxBackups: defaultMaxBackups,
		bufSize:    defaultBufSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.open(); err != nil {
		return nil, err
	}
	return o, nil
}

// Write appends the event, trimmed to the configured verbosity.
func (o *Output) Write(_ context.Context, event model.TriggerEvent) error {
	return o.append(output.FormatEvent(event, o.verbosity))
}

// Summarize appends the run summary as a {"summary": ...} record.
func (o *Output) Summarize(_ context.Context, summary model.Summary) error {
	return o.append(summaryRecord{Summary: summary})
}

// Close flushes pending records and closes the file. Later writes fail.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	o.closed = true
	flushErr := o.w.Flush()
	closeErr := o.f.Close()
	if err := errors.Join(flushErr, closeErr); err != nil {
		return fmt.Errorf("file output: %w", err)
	}
	return nil
}

func (o *Output) append(v any) error {
	rec, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	rec = append(rec, '\n')

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return errClosed
	}
	if o.maxSize > 0 && o.size > 0 && o.size+int64(len(rec)) > o.maxSize {
		if err := o.rotate(); err != nil {
			return fmt.Errorf("file output: rotate: %w", err)
		}
	}
	n, err := o.w.Write(rec)
	o.size += int64(n)
	if err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

func (o *Output) open() error {
	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("file output: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("file output: %w", err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, o.bufSize)
	o.size = info.Size()
	return nil
}

// rotate moves the current file to backup 1, shifting older backups up and
// dropping the one past maxBackups, then opens a fresh file.
func (o *Output) rotate() error {
	if err := o.w.Flush(); err != nil {
		return err
	}
	if err := o.f.Close(); err != nil {
		return err
	}

	if err := os.Remove(backupName(o.path, o.maxBackups)); err != nil && !os.IsNotExist(err) {
		return err
	}
	for i := o.maxBackups - 1; i >= 1; i-- {
		if err := os.Rename(backupName(o.path, i), backupName(o.path, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	if err := os.Rename(o.path, backupName(o.path, 1)); err != nil {
		return err
	}
	return o.open()
}

// backupName keeps the extension last so rotated files stay recognisable:
// events.ndjson becomes events.1.ndjson.
func backupName(path string, i int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s.%d%s", strings.TrimSuffix(path, ext), i, ext)
}
