package service

import (
	"github.com/slang-lang/slangflow/internal/config"
)

// Overrides carries CLI flag values that take precedence over a loaded
// config file, mirroring viper's own "flag beats file" precedence (see
// internal/config.LoadConfig's doc comment) for the handful of flags the
// CLI exposes directly rather than through SLANGFLOW_* environment
// variables.
type Overrides struct {
	// Format is non-empty only when --format was explicitly set.
	Format string
	// IterationCapMultiplier, when non-zero, replaces the configured
	// solver multiplier. No CLI command sets it.
	IterationCapMultiplier int
	// Analyses is non-nil only when --select was explicitly set.
	Analyses []string
}

// ConfigurationLoaderImpl loads slangflow's configuration and layers CLI
// flag overrides on top of it.
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader returns a ConfigurationLoaderImpl.
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// Load reads configPath (or discovers .slangflow.yaml when empty) and
// applies ov on top of it, validating the merged result.
func (l *ConfigurationLoaderImpl) Load(configPath string, ov Overrides) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	l.applyOverrides(cfg, ov)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *ConfigurationLoaderImpl) applyOverrides(cfg *config.Config, ov Overrides) {
	if ov.Format != "" {
		cfg.Output.Format = ov.Format
	}
	if ov.IterationCapMultiplier != 0 {
		cfg.Solver.IterationCapMultiplier = ov.IterationCapMultiplier
	}
	if ov.Analyses != nil {
		cfg.Analysis.Enabled = ov.Analyses
	}
}
