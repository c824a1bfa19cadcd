package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hejijunhao/vmcat/internal/connector"
	"github.com/hejijunhao/vmcat/internal/engine/tally"
	"github.com/hejijunhao/vmcat/internal/model"
	"github.com/hejijunhao/vmcat/internal/output"
)

// Processor classifies raw lines. *engine.Engine satisfies it.
type Processor interface {
	Process(raw model.RawLog) (model.TriggerEvent, bool)
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithEvents enables writing every classified event to the output, not just
// the final summary.
func WithEvents(enabled bool) Option {
	return func(p *Pipeline) { p.events = enabled }
}

// Pipeline connects a connector, processor, and output into a processing pipeline.
type Pipeline struct {
	connector connector.Connector
	processor Processor
	output    output.Output
	events    bool
}

// New creates a Pipeline from the given components.
func New(conn connector.Connector, proc Processor, out output.Output, opts ...Option) *Pipeline {
	p := &Pipeline{
		connector: conn,
		processor: proc,
		output:    out,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stream processes lines as the connector produces them and writes the
// summary once the input is exhausted. On cancellation, or when the connector
// fails mid-read, the summary of what was read so far is still written and
// the error is returned. The connector is cancelled on every return.
func (p *Pipeline) Stream(ctx context.Context, cfg connector.ConnectorConfig) (model.Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch, errc, err := p.connector.Stream(ctx, cfg)
	if err != nil {
		return model.Summary{}, fmt.Errorf("pipeline stream: %w", err)
	}

	t := tally.New()
	for {
		select {
		case <-ctx.Done():
			return p.finish(context.WithoutCancel(ctx), t, ctx.Err())
		case raw, ok := <-ch:
			if !ok {
				if err := <-errc; err != nil {
					return p.finish(ctx, t, fmt.Errorf("pipeline stream: %w", err))
				}
				return p.finish(ctx, t, nil)
			}
			if err := p.handle(ctx, t, raw); err != nil {
				return t.Summary(), err
			}
		}
	}
}

// Query runs the pipeline in one-shot mode over the connector's query result.
func (p *Pipeline) Query(ctx context.Context, cfg connector.ConnectorConfig, params connector.QueryParams) (model.Summary, error) {
	raws, err := p.connector.Query(ctx, cfg, params)
	if err != nil {
		return model.Summary{}, fmt.Errorf("pipeline query: %w", err)
	}

	t := tally.New()
	for _, raw := range raws {
		if err := p.handle(ctx, t, raw); err != nil {
			return t.Summary(), err
		}
	}
	return p.finish(ctx, t, nil)
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}

func (p *Pipeline) handle(ctx context.Context, t *tally.Tally, raw model.RawLog) error {
	t.Line(raw.Source)
	event, ok := p.processor.Process(raw)
	if !ok {
		return nil
	}
	if !event.Known && !t.Seen(event.Literal) {
		slog.Debug("unknown safepoint trigger", "literal", event.Literal, "source", raw.Source, "line", raw.Line)
	}
	t.Add(event)
	if !p.events {
		return nil
	}
	if err := p.output.Write(ctx, event); err != nil {
		return fmt.Errorf("pipeline output: %w", err)
	}
	return nil
}

func (p *Pipeline) finish(ctx context.Context, t *tally.Tally, cause error) (model.Summary, error) {
	summary := t.Summary()
	if err := p.output.Summarize(ctx, summary); err != nil {
		return summary, fmt.Errorf("pipeline summary: %w", err)
	}
	slog.Info("scan complete", "lines", summary.Lines, "matched", summary.Matched, "unknown", summary.Unknown)
	return summary, cause
}
