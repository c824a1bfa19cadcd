package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Version is the vmcat release version.
const Version = "0.3.0"

// Config holds all vmcat configuration.
type Config struct {
	Mode      string          `yaml:"mode"` // "stream" or "query"
	LogLevel  string          `yaml:"log_level"`
	Connector ConnectorConfig `yaml:"connector"`
	Engine    EngineConfig    `yaml:"engine"`
	Output    OutputConfig    `yaml:"output"`
	Query     QueryConfig     `yaml:"query"`
}

// ConnectorConfig holds connector-specific settings.
type ConnectorConfig struct {
	Provider string   `yaml:"provider"`
	Paths    []string `yaml:"paths"`
}

// EngineConfig holds classification settings.
type EngineConfig struct {
	Verbosity string `yaml:"verbosity"` // "minimal", "standard", "full"
	Fallback  bool   `yaml:"fallback"`  // also match known literals as whole words in untagged lines
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Format        string `yaml:"format"` // "text" or "json"
	Pretty        bool   `yaml:"pretty"`
	Events        bool   `yaml:"events"` // write every classified line, not just the summary
	EventsFile    string `yaml:"events_file"`
	EventsMaxSize int64  `yaml:"events_max_size"`
	EventsBackups int    `yaml:"events_backups"` // rotated files kept; 0 keeps the default
	Textfile      string `yaml:"textfile"` // Prometheus textfile export path
}

// QueryConfig holds filters applied in query mode.
type QueryConfig struct {
	Limit  int    `yaml:"limit"`
	Filter string `yaml:"filter"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Mode:      "stream",
		LogLevel:  "info",
		Connector: ConnectorConfig{Provider: "file"},
		Engine:    EngineConfig{Verbosity: "standard"},
		Output:    OutputConfig{Format: "text"},
	}
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	cfg := Defaults()
	applyEnv(&cfg)
	return cfg
}

// LoadFile reads a YAML configuration file over the defaults, then applies
// environment variables on top. An empty path falls back to VMCAT_CONFIG,
// and to Load when that is unset too.
func LoadFile(path string) (Config, error) {
	if path == "" {
		path = os.Getenv("VMCAT_CONFIG")
	}
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Mode = getenv("VMCAT_MODE", cfg.Mode)
	cfg.LogLevel = getenv("VMCAT_LOG_LEVEL", cfg.LogLevel)
	cfg.Connector.Provider = getenv("VMCAT_CONNECTOR", cfg.Connector.Provider)
	cfg.Connector.Paths = getenvList("VMCAT_PATHS", cfg.Connector.Paths)
	cfg.Engine.Verbosity = getenv("VMCAT_VERBOSITY", cfg.Engine.Verbosity)
	cfg.Engine.Fallback = getenvBool("VMCAT_FALLBACK", cfg.Engine.Fallback)
	cfg.Output.Format = getenv("VMCAT_OUTPUT_FORMAT", cfg.Output.Format)
	cfg.Output.Pretty = getenvBool("VMCAT_OUTPUT_PRETTY", cfg.Output.Pretty)
	cfg.Output.Events = getenvBool("VMCAT_EVENTS", cfg.Output.Events)
	cfg.Output.EventsFile = getenv("VMCAT_EVENTS_FILE", cfg.Output.EventsFile)
	cfg.Output.EventsMaxSize = int64(getenvInt("VMCAT_EVENTS_MAX_SIZE", int(cfg.Output.EventsMaxSize)))
	cfg.Output.EventsBackups = getenvInt("VMCAT_EVENTS_BACKUPS", cfg.Output.EventsBackups)
	cfg.Output.Textfile = getenv("VMCAT_TEXTFILE", cfg.Output.Textfile)
	cfg.Query.Limit = getenvInt("VMCAT_QUERY_LIMIT", cfg.Query.Limit)
	cfg.Query.Filter = getenv("VMCAT_QUERY_FILTER", cfg.Query.Filter)
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	switch c.Mode {
	case "stream", "query":
	default:
		errs = append(errs, fmt.Errorf("mode must be stream or query, got %q", c.Mode))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log level must be debug, info, warn or error, got %q", c.LogLevel))
	}
	if c.Connector.Provider == "" {
		errs = append(errs, errors.New("connector provider is required (VMCAT_CONNECTOR)"))
	}
	switch c.Engine.Verbosity {
	case "minimal", "standard", "full":
	default:
		errs = append(errs, fmt.Errorf("verbosity must be minimal, standard or full, got %q", c.Engine.Verbosity))
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("output format must be text or json, got %q", c.Output.Format))
	}
	if c.Output.EventsMaxSize < 0 {
		errs = append(errs, fmt.Errorf("events max size must be >= 0, got %d", c.Output.EventsMaxSize))
	}
	if c.Output.EventsBackups < 0 {
		errs = append(errs, fmt.Errorf("events backups must be >= 0, got %d", c.Output.EventsBackups))
	}
	if c.Output.EventsMaxSize > 0 && c.Output.EventsFile == "" {
		errs = append(errs, errors.New("events max size requires an events file (VMCAT_EVENTS_FILE)"))
	}
	if c.Query.Limit < 0 {
		errs = append(errs, fmt.Errorf("query limit must be >= 0, got %d", c.Query.Limit))
	}
	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getenvList splits a comma-separated variable, dropping empty items.
func getenvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
