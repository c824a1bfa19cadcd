// Package textfile exports trigger counts in the Prometheus text format, for
// pickup by node_exporter's textfile collector.
package textfile

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hejijunhao/vmcat/internal/model"
)

// Output counts events into Prometheus metrics and writes them to a file on
// Close. Counters are safe for concurrent use.
type Output struct {
	path     string
	registry *prometheus.Registry

	triggers *prometheus.CounterVec
	lines    prometheus.Gauge
	sources  prometheus.Gauge
	unknown  prometheus.Gauge
}

// New creates a textfile Output writing to path. Nothing is written until Close.
func New(path string) *Output {
	reg := prometheus.NewRegistry()
	o := &Output{
		path:     path,
		registry: reg,
		triggers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vmcat_safepoint_triggers_total",
			Help: "Safepoints seen in VM logs, by trigger.",
		}, []string{"trigger", "literal", "gc"}),
		lines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vmcat_lines_scanned",
			Help: "Log lines scanned in the last run.",
		}),
		sources: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vmcat_sources_scanned",
			Help: "Log sources scanned in the last run.",
		}),
		unknown: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vmcat_unknown_triggers",
			Help: "Safepoints whose trigger is not in the catalog, in the last run.",
		}),
	}
	reg.MustRegister(o.triggers, o.lines, o.sources, o.unknown)
	return o
}

// Registry returns the registry holding the exported metrics.
func (o *Output) Registry() *prometheus.Registry {
	return o.registry
}

func (o *Output) Write(_ context.Context, event model.TriggerEvent) error {
	o.triggers.WithLabelValues(event.Trigger, event.Literal, strconv.FormatBool(event.GC)).Inc()
	return nil
}

// Summarize records the run-level gauges. Trigger counters come from Write.
func (o *Output) Summarize(_ context.Context, summary model.Summary) error {
	o.lines.Set(float64(summary.Lines))
	o.sources.Set(float64(summary.Sources))
	o.unknown.Set(float64(summary.Unknown))
	return nil
}

// Close writes the metrics to the configured path atomically.
func (o *Output) Close() error {
	if err := prometheus.WriteToTextfile(o.path, o.registry); err != nil {
		return fmt.Errorf("textfile output: %w", err)
	}
	return nil
}
