// Package config loads slangflow's configuration file (.slangflow.yaml) via
// spf13/viper. This module's configurable surface is deliberately small:
// the core (cfg, dataflow, analysis/*) reads no configuration at all, since
// it is a pure function of its CFG/HLIR input. Only the ambient CLI layer
// is configurable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/slang-lang/slangflow/internal/constants"
)

// Config is slangflow's full configuration surface.
type Config struct {
	// Output controls how analyze/check results are rendered. The build
	// command does not read it; it picks text or DOT from its --dot flag.
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Solver controls the dataflow worklist solver's safety net.
	Solver SolverConfig `json:"solver" mapstructure:"solver" yaml:"solver"`

	// Analysis controls which built-in analyses the `analyze` command
	// runs by default.
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis" yaml:"analysis"`
}

// OutputConfig holds output-formatting configuration.
type OutputConfig struct {
	// Format is one of constants.OutputFormatText/JSON/DOT. The analyze
	// and check formatters render "dot" the same as "text".
	Format string `json:"format" mapstructure:"format" yaml:"format"`
}

// SolverConfig holds dataflow.Solve's safety-net configuration.
type SolverConfig struct {
	// IterationCapMultiplier scales the solver's iteration cap
	// ("10 × |blocks| × |statements|"). Raise it for pathological
	// fixtures with unusually large or densely-connected CFGs.
	IterationCapMultiplier int `json:"iteration_cap_multiplier" mapstructure:"iteration_cap_multiplier" yaml:"iteration_cap_multiplier"`
}

// AnalysisConfig controls which built-in analyses run by default.
type AnalysisConfig struct {
	// Enabled lists analysis names (constants.AnalysisReachingDefs,
	// constants.AnalysisLiveVars) to run when `analyze` is invoked
	// without an explicit --select flag.
	Enabled []string `json:"enabled" mapstructure:"enabled" yaml:"enabled"`
}

// DefaultConfig returns the built-in configuration used when no config
// file is found and no flags override it.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: constants.OutputFormatText,
		},
		Solver: SolverConfig{
			IterationCapMultiplier: constants.DefaultIterationCapMultiplier,
		},
		Analysis: AnalysisConfig{
			Enabled: []string{constants.AnalysisReachingDefs, constants.AnalysisLiveVars},
		},
	}
}

// Validate rejects configurations the rest of the program cannot act on.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case constants.OutputFormatText, constants.OutputFormatJSON, constants.OutputFormatDOT:
	default:
		return fmt.Errorf("invalid output.format %q", c.Output.Format)
	}
	if c.Solver.IterationCapMultiplier <= 0 {
		return fmt.Errorf("solver.iteration_cap_multiplier must be positive, got %d", c.Solver.IterationCapMultiplier)
	}
	for _, name := range c.Analysis.Enabled {
		switch name {
		case constants.AnalysisReachingDefs, constants.AnalysisLiveVars:
		default:
			return fmt.Errorf("unknown analysis %q in analysis.enabled", name)
		}
	}
	return nil
}

// LoadConfig loads configuration from configPath, or discovers
// constants.ConfigFileName by walking up from the current directory when
// configPath is empty. Precedence, applied by viper: SLANGFLOW_*
// environment variables (e.g. SLANGFLOW_OUTPUT_FORMAT) > the config file
// (configPath, or the discovered file) > DefaultConfig.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = discoverConfigFile()
	}

	v := viper.New()
	v.SetEnvPrefix(constants.EnvVarPrefix)
	// Map nested keys such as output.format to SLANGFLOW_OUTPUT_FORMAT.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("solver.iteration_cap_multiplier", def.Solver.IterationCapMultiplier)
	v.SetDefault("analysis.enabled", def.Analysis.Enabled)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// discoverConfigFile walks from the current directory up to the
// filesystem root looking for constants.ConfigFileName.
func discoverConfigFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, constants.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
