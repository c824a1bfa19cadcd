package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/vmcat/internal/config"
	"github.com/hejijunhao/vmcat/internal/connector"
	"github.com/hejijunhao/vmcat/internal/logging"
)

type scanFlags struct {
	configPath string
	format     string
	verbosity  string
	events     bool
	pretty     bool
	fallback   bool
	eventsFile string
	textfile   string
	query      bool
	limit      int
	filter     string
}

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	var f scanFlags

	cmd := &cobra.Command{
		Use:   "scan [file...]",
		Short: "Classify the safepoints in VM log files (or stdin)",
		Long: `Reads each file (or stdin when none, or "-") line by line, classifies every
safepoint by its trigger, and prints a summary of trigger counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(f.configPath)
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)
			if len(args) > 0 {
				cfg.Connector.Paths = args
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return runScan(cmd, cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file (default $VMCAT_CONFIG)")
	fl.StringVarP(&f.format, "format", "o", "", "report format: text or json")
	fl.StringVar(&f.verbosity, "verbosity", "", "event detail: minimal, standard or full")
	fl.BoolVarP(&f.events, "events", "e", false, "print every classified line, not just the summary")
	fl.BoolVar(&f.pretty, "pretty", false, "indent JSON output")
	fl.BoolVar(&f.fallback, "fallback", false, "also match trigger names as whole words in lines of unknown format")
	fl.StringVar(&f.eventsFile, "events-file", "", "also write events as NDJSON to this file")
	fl.StringVar(&f.textfile, "textfile", "", "write Prometheus metrics to this file")
	fl.BoolVar(&f.query, "query", false, "read all input before classifying (enables --limit and --filter)")
	fl.IntVar(&f.limit, "limit", 0, "query mode: classify at most this many lines")
	fl.StringVar(&f.filter, "filter", "", "query mode: only classify lines containing this text")
	return cmd
}

// apply copies explicitly set flags over cfg, so flags beat the config file
// and the environment.
func (f *scanFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("verbosity") {
		cfg.Engine.Verbosity = f.verbosity
	}
	if changed("events") {
		cfg.Output.Events = f.events
	}
	if changed("pretty") {
		cfg.Output.Pretty = f.pretty
	}
	if changed("fallback") {
		cfg.Engine.Fallback = f.fallback
	}
	if changed("events-file") {
		cfg.Output.EventsFile = f.eventsFile
	}
	if changed("textfile") {
		cfg.Output.Textfile = f.textfile
	}
	if changed("query") && f.query {
		cfg.Mode = "query"
	}
	if changed("limit") {
		cfg.Query.Limit = f.limit
	}
	if changed("filter") {
		cfg.Query.Filter = f.filter
	}
}

func runScan(cmd *cobra.Command, cfg config.Config) error {
	logging.Init(cfg.Output.Format == "json", logging.ParseLevel(cfg.LogLevel))

	p, err := newPipeline(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			slog.Error("closing outputs", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connCfg := connector.ConnectorConfig{
		Provider: cfg.Connector.Provider,
		Paths:    cfg.Connector.Paths,
	}
	slog.Debug("starting scan", "connector", cfg.Connector.Provider, "mode", cfg.Mode, "paths", len(cfg.Connector.Paths))

	if cfg.Mode == "query" {
		_, err = p.Query(ctx, connCfg, connector.QueryParams{Limit: cfg.Query.Limit, Filter: cfg.Query.Filter})
	} else {
		_, err = p.Stream(ctx, connCfg)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
