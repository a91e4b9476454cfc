package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/BeppeMagro/gomkm/internal/config"
	"github.com/BeppeMagro/gomkm/internal/log"
	"github.com/BeppeMagro/gomkm/internal/registry"
	"github.com/BeppeMagro/gomkm/internal/tracing"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config

	traceProvider *tracing.Provider
	logCleanup    func()
)

var rootCmd = &cobra.Command{
	Use:   "gomkm",
	Short: "Registry of bundled stopping-power reference data",
	Long: `gomkm resolves, validates, and serves the bundled reference data consumed
by MKM table computations: per-ion stopping-power tables grouped by source
program (mstar_3_12, geant4_11_3_0, fluka_2020_0, ...) and the elements.json
periodic-table lookup.

Paths resolve through two tiers: the installed data tree
($GOMKM_DATA_DIR or ~/.gomkm/data, see 'gomkm data:install') first, then
the local development tree (./data).`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/gomkm/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "",
		"installed data tree (overrides config and $GOMKM_DATA_DIR)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to the config directory")

	// Bind flags to viper
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("data_dir", defaults.DataDir)
	viper.SetDefault("local_dir", defaults.LocalDir)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .gomkm/config.yaml (current directory)
		// 2. ~/.config/gomkm/config.yaml (user config)
		if _, err := os.Stat(".gomkm/config.yaml"); err == nil {
			viper.SetConfigFile(".gomkm/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "gomkm"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .gomkm/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".gomkm/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func setup(cmd *cobra.Command, args []string) error {
	if debug || os.Getenv("GOMKM_DEBUG") != "" {
		if err := os.MkdirAll(configDir(), 0o750); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		cleanup, err := log.Init(filepath.Join(configDir(), "debug.log"))
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		logCleanup = cleanup
	}

	if err := config.ValidateTracing(cfg.Tracing); err != nil {
		return fmt.Errorf("invalid tracing configuration: %w", err)
	}

	tcfg := tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     cfg.Tracing.FilePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
		ServiceName:  cfg.Tracing.ServiceName,
	}
	if tcfg.Enabled && tcfg.Exporter == "file" && tcfg.FilePath == "" {
		tcfg.FilePath = filepath.Join(configDir(), "traces", "traces.jsonl")
	}

	provider, err := tracing.NewProvider(tcfg)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	traceProvider = provider
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if traceProvider != nil {
		_ = traceProvider.Shutdown(context.Background())
	}
	if logCleanup != nil {
		logCleanup()
	}
}

// configDir is where the debug log and default trace file live.
func configDir() string {
	if path := viper.ConfigFileUsed(); path != "" {
		return filepath.Dir(path)
	}
	return ".gomkm"
}

// newRegistry builds the standard two-tier registry from the loaded config.
func newRegistry() *registry.Registry {
	return registry.Default(cfg.DataDir, cfg.LocalDir)
}

// span starts a trace span around one registry operation.
func span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if traceProvider == nil {
		// PersistentPreRunE has not run (direct RunE calls in tests);
		// fall back to a disabled provider.
		traceProvider, _ = tracing.NewProvider(tracing.Config{})
	}
	return traceProvider.Tracer().Start(ctx, name, trace.WithAttributes(attrs...))
}

// finishSpan records the operation outcome and ends the span.
func finishSpan(s trace.Span, err error) {
	if err != nil {
		s.SetStatus(codes.Error, err.Error())
	} else {
		s.SetStatus(codes.Ok, "")
	}
	s.End()
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
