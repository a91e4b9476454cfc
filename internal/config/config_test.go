package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/BeppeMagro/gomkm/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()

	assert.Empty(t, cfg.DataDir)
	assert.Empty(t, cfg.LocalDir)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "file", cfg.Tracing.Exporter)
	assert.Equal(t, "localhost:4317", cfg.Tracing.OTLPEndpoint)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRate)
	assert.Equal(t, "gomkm", cfg.Tracing.ServiceName)
}

func TestValidateTracing(t *testing.T) {
	tests := []struct {
		name    string
		tracing config.TracingConfig
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			tracing: config.Defaults().Tracing,
		},
		{
			name:    "empty exporter is valid",
			tracing: config.TracingConfig{Exporter: "", SampleRate: 1.0},
		},
		{
			name:    "otlp exporter is valid",
			tracing: config.TracingConfig{Exporter: "otlp", SampleRate: 0.5},
		},
		{
			name:    "unknown exporter",
			tracing: config.TracingConfig{Exporter: "jaeger", SampleRate: 1.0},
			wantErr: true,
		},
		{
			name:    "negative sample rate",
			tracing: config.TracingConfig{Exporter: "file", SampleRate: -0.1},
			wantErr: true,
		},
		{
			name:    "sample rate above one",
			tracing: config.TracingConfig{Exporter: "file", SampleRate: 1.5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.ValidateTracing(tt.tracing)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// The commented template written on first run must stay in sync with the
// Config struct and the coded defaults.
func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	var fromTemplate struct {
		DataDir  string `yaml:"data_dir"`
		LocalDir string `yaml:"local_dir"`
		Tracing  struct {
			Enabled      bool    `yaml:"enabled"`
			Exporter     string  `yaml:"exporter"`
			FilePath     string  `yaml:"file_path"`
			OTLPEndpoint string  `yaml:"otlp_endpoint"`
			SampleRate   float64 `yaml:"sample_rate"`
			ServiceName  string  `yaml:"service_name"`
		} `yaml:"tracing"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(config.DefaultConfigTemplate()), &fromTemplate))

	defaults := config.Defaults()
	assert.Equal(t, defaults.DataDir, fromTemplate.DataDir)
	assert.Equal(t, defaults.LocalDir, fromTemplate.LocalDir)
	assert.Equal(t, defaults.Tracing.Enabled, fromTemplate.Tracing.Enabled)
	assert.Equal(t, defaults.Tracing.Exporter, fromTemplate.Tracing.Exporter)
	assert.Equal(t, defaults.Tracing.OTLPEndpoint, fromTemplate.Tracing.OTLPEndpoint)
	assert.Equal(t, defaults.Tracing.SampleRate, fromTemplate.Tracing.SampleRate)
	assert.Equal(t, defaults.Tracing.ServiceName, fromTemplate.Tracing.ServiceName)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gomkm", "config.yaml")

	require.NoError(t, config.WriteDefaultConfig(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfigTemplate(), string(content))
}
