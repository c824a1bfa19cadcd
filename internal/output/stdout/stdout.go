package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hejijunhao/vmcat/internal/model"
	"github.com/hejijunhao/vmcat/internal/output"
)

// Format selects how the stdout Output renders events and summaries.
type Format string

const (
	JSON Format = "json" // NDJSON events, JSON summary
	Text Format = "text" // one line per event, table summary
)

// Output writes events and the run summary to stdout.
type Output struct {
	w         io.Writer
	enc       *json.Encoder
	format    Format
	verbosity output.Verbosity
}

// New creates a stdout Output with verbosity-aware field omission
// and optional pretty-printed JSON.
func New(format Format, verbosity output.Verbosity, pretty bool) *Output {
	return NewWriter(os.Stdout, format, verbosity, pretty)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, format Format, verbosity output.Verbosity, pretty bool) *Output {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if format != Text {
		format = JSON
	}
	return &Output{w: w, enc: enc, format: format, verbosity: verbosity}
}

func (o *Output) Write(_ context.Context, event model.TriggerEvent) error {
	formatted := output.FormatEvent(event, o.verbosity)
	if o.format == Text {
		if _, err := fmt.Fprintln(o.w, eventLine(formatted)); err != nil {
			return fmt.Errorf("stdout output: %w", err)
		}
		return nil
	}
	if err := o.enc.Encode(formatted); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Summarize(_ context.Context, summary model.Summary) error {
	if o.format == Text {
		if err := writeTable(o.w, summary); err != nil {
			return fmt.Errorf("stdout output: %w", err)
		}
		return nil
	}
	if err := o.enc.Encode(summary); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
