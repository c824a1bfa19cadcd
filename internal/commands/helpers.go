// Package commands implements the CLI subcommands for the vmcat binary.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/hejijunhao/vmcat/internal/config"
	"github.com/hejijunhao/vmcat/internal/connector"
	"github.com/hejijunhao/vmcat/internal/connector/file"
	"github.com/hejijunhao/vmcat/internal/engine"
	"github.com/hejijunhao/vmcat/internal/engine/classifier"
	"github.com/hejijunhao/vmcat/internal/model"
	"github.com/hejijunhao/vmcat/internal/output"
	fileout "github.com/hejijunhao/vmcat/internal/output/file"
	"github.com/hejijunhao/vmcat/internal/output/multi"
	"github.com/hejijunhao/vmcat/internal/output/stdout"
	"github.com/hejijunhao/vmcat/internal/output/textfile"
	"github.com/hejijunhao/vmcat/internal/pipeline"
)

// summaryOnly drops events so an output only receives the run summary.
type summaryOnly struct {
	output.Output
}

func (summaryOnly) Write(context.Context, model.TriggerEvent) error { return nil }

// newOutput assembles the configured destinations. The report always goes
// to w; the events file and the metrics textfile are added when set.
func newOutput(cfg config.Config, w io.Writer) (output.Output, error) {
	verbosity := output.ParseVerbosity(cfg.Engine.Verbosity)

	var report output.Output = stdout.NewWriter(w, stdout.Format(cfg.Output.Format), verbosity, cfg.Output.Pretty)
	if !cfg.Output.Events {
		report = summaryOnly{report}
	}
	outs := []output.Output{report}

	if cfg.Output.EventsFile != "" {
		fo, err := fileout.New(cfg.Output.EventsFile, verbosity,
			fileout.WithMaxSize(cfg.Output.EventsMaxSize),
			fileout.WithMaxBackups(cfg.Output.EventsBackups),
		)
		if err != nil {
			return nil, fmt.Errorf("creating events file: %w", err)
		}
		outs = append(outs, fo)
	}
	if cfg.Output.Textfile != "" {
		outs = append(outs, textfile.New(cfg.Output.Textfile))
	}

	if len(outs) == 1 {
		return outs[0], nil
	}
	return multi.New(outs...), nil
}

// newConnector resolves the configured provider. A file connector reads
// stdin from r.
func newConnector(cfg config.Config, r io.Reader) (connector.Connector, error) {
	ctor, err := connector.Get(cfg.Connector.Provider)
	if err != nil {
		return nil, err
	}
	conn := ctor()
	if fc, ok := conn.(*file.Connector); ok {
		fc.Stdin = r
	}
	return conn, nil
}

// newPipeline wires connector, engine and outputs from cfg.
func newPipeline(cfg config.Config, r io.Reader, w io.Writer) (*pipeline.Pipeline, error) {
	conn, err := newConnector(cfg, r)
	if err != nil {
		return nil, err
	}
	out, err := newOutput(cfg, w)
	if err != nil {
		return nil, err
	}
	eng := engine.New(classifier.New(cfg.Engine.Fallback))

	// Events reach the pipeline's outputs whenever any of them wants them;
	// the report drops them itself unless asked.
	events := cfg.Output.Events || cfg.Output.EventsFile != "" || cfg.Output.Textfile != ""
	return pipeline.New(conn, eng, out, pipeline.WithEvents(events)), nil
}
