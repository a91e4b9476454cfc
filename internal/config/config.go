// Package config provides configuration types, defaults, and persistence for gomkm.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BeppeMagro/gomkm/internal/log"
)

// Config holds all configuration options for gomkm.
type Config struct {
	// DataDir overrides the installed data tree (first resolution tier).
	DataDir string `mapstructure:"data_dir"`

	// LocalDir is the base of the development data tree (second tier).
	// Empty means the working directory.
	LocalDir string `mapstructure:"local_dir"`

	Tracing TracingConfig `mapstructure:"tracing"`
}

// TracingConfig holds OpenTelemetry tracing options.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the export backend: "none", "file", "stdout", "otlp".
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the "file" exporter.
	// Default: traces/traces.jsonl under the config directory.
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls the fraction of traces to sample (0..1].
	SampleRate float64 `mapstructure:"sample_rate"`

	// ServiceName identifies this service in traces.
	ServiceName string `mapstructure:"service_name"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		DataDir:  "",
		LocalDir: "",
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "",
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
			ServiceName:  "gomkm",
		},
	}
}

// ValidateTracing checks the tracing section for usable values.
func ValidateTracing(t TracingConfig) error {
	switch t.Exporter {
	case "", "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("unsupported tracing exporter: %q", t.Exporter)
	}
	if t.SampleRate < 0 || t.SampleRate > 1 {
		return fmt.Errorf("tracing sample_rate %v out of range [0, 1]", t.SampleRate)
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# gomkm configuration
#
# data_dir overrides the installed data tree (first resolution tier).
# When empty, $GOMKM_DATA_DIR and then ~/.gomkm/data are used.
data_dir: ""

# local_dir is the base of the development data tree (second tier);
# <local_dir>/data is probed when the installed tree misses.
# Empty means the working directory.
local_dir: ""

tracing:
  enabled: false
  # one of: none, file, stdout, otlp
  exporter: file
  # output file for the file exporter; empty derives
  # <config dir>/traces/traces.jsonl
  file_path: ""
  otlp_endpoint: "localhost:4317"
  sample_rate: 1.0
  service_name: gomkm
`
}

// WriteDefaultConfig writes the default config template to configPath.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
