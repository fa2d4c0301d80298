package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. TIMETABLE_LOG_LEVEL.
const EnvPrefix = "TIMETABLE_"

// Loader layers configuration sources; later layers win.
type Loader struct {
	k         *koanf.Koanf
	filePath  string
	envPrefix string
	overrides map[string]any
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile loads path as YAML after the defaults. A missing file is an error.
func WithFile(path string) LoaderOption {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithEnvPrefix replaces EnvPrefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithOverrides applies dotted keys on top of every other source.
func WithOverrides(values map[string]any) LoaderOption {
	return func(l *Loader) {
		l.overrides = values
	}
}

// NewLoader returns a Loader with the default sources.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Defaults returns the lowest configuration layer.
func Defaults() map[string]any {
	return map[string]any{
		"problem.kind":    "timetable",
		"search.max_time": 0,

		"input.path":   "-",
		"output.path":  "-",
		"output.paths": false,

		"log.level":       "info",
		"log.format":      "json",
		"log.output":      "stderr",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		"metrics.enabled":   false,
		"metrics.namespace": "timetable",
		"metrics.path":      "",

		"tracing.enabled":      false,
		"tracing.endpoint":     "localhost:4317",
		"tracing.service_name": "timetable",
		"tracing.sample_rate":  1.0,
		"tracing.insecure":     true,
	}
}

// Load resolves defaults, file, environment and overrides, then validates.
func (l *Loader) Load() (*Config, error) {
	// 1. Defaults
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	// 2. YAML file
	if l.filePath != "" {
		if err := l.k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", l.filePath, err)
		}
	}

	// 3. Environment
	if err := l.k.Load(env.ProviderWithValue(l.envPrefix, ".", l.envKey), nil); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	// 4. Overrides
	if len(l.overrides) > 0 {
		if err := l.k.Load(confmap.Provider(l.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("config: overrides: %w", err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps TIMETABLE_LOG_FILE_PATH to log.file_path: the first underscore
// separates the section, the rest belong to the field name.
func (l *Loader) envKey(envKey, value string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
	key = strings.Replace(key, "_", ".", 1)

	return key, value
}
