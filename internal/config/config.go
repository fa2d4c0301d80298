// Package config loads the driver configuration from defaults, an optional
// YAML file, TIMETABLE_* environment variables and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/timetable/ingest"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full driver configuration.
type Config struct {
	Problem ProblemConfig `koanf:"problem"`
	Search  SearchConfig  `koanf:"search"`
	Input   InputConfig   `koanf:"input"`
	Output  OutputConfig  `koanf:"output"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Tracing TracingConfig `koanf:"tracing"`
}

// ProblemConfig selects the input format.
type ProblemConfig struct {
	Kind string `koanf:"kind"` // timetable, static, obstacle
}

// SearchConfig tunes every search of the run.
type SearchConfig struct {
	MaxTime int64 `koanf:"max_time"` // 0 = no cap
}

// InputConfig names the case stream.
type InputConfig struct {
	Path string `koanf:"path"` // "" or "-" = stdin
}

// OutputConfig names the answer stream.
type OutputConfig struct {
	Path  string `koanf:"path"`  // "" or "-" = stdout
	Paths bool   `koanf:"paths"` // print the node sequence after each reachable answer
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level      string `koanf:"level"`  // debug, info, warn, error
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig configures the Prometheus collector.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
	Path      string `koanf:"path"` // text exposition written here at exit; "" = none
}

// TracingConfig configures OpenTelemetry.
type TracingConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	SampleRate  float64 `koanf:"sample_rate"`
	Insecure    bool    `koanf:"insecure"`
}

// Validate checks value ranges and enumerations, reporting all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if _, err := ingest.ParseKind(c.Problem.Kind); err != nil {
		errs = append(errs, fmt.Sprintf("problem.kind must be one of: timetable, static, obstacle, got %q", c.Problem.Kind))
	}
	if c.Search.MaxTime < 0 {
		errs = append(errs, fmt.Sprintf("search.max_time must be non-negative, got %d", c.Search.MaxTime))
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format must be one of: json, text, got %s", c.Log.Format))
	}
	validOutputs := map[string]bool{"stdout": true, "stderr": true, "file": true}
	if !validOutputs[c.Log.Output] {
		errs = append(errs, fmt.Sprintf("log.output must be one of: stdout, stderr, file, got %s", c.Log.Output))
	}
	if c.Log.Output == "file" && c.Log.FilePath == "" {
		errs = append(errs, "log.file_path is required when log.output is file")
	}

	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		errs = append(errs, "metrics.namespace is required when metrics are enabled")
	}

	if c.Tracing.Enabled {
		if c.Tracing.Endpoint == "" {
			errs = append(errs, "tracing.endpoint is required when tracing is enabled")
		}
		if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
			errs = append(errs, fmt.Sprintf("tracing.sample_rate must be within [0,1], got %g", c.Tracing.SampleRate))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}
