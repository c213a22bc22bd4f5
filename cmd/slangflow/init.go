package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/slang-lang/slangflow/internal/config"
	"github.com/slang-lang/slangflow/internal/constants"
)

var (
	initConfigPath  string
	initForce       bool
	initNoFixture   bool
	initInteractive bool
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a starter slangflow configuration and fixture",
		Long: `Init writes a starter .slangflow.yaml configuration file and, unless
--no-fixture is given, a sample HLIR fixture demonstrating the wire format
build/analyze/check expect.

Examples:
  slangflow init
  slangflow init --interactive
  slangflow init --force --no-fixture`,
		RunE: runInit,
	}

	cmd.Flags().StringVarP(&initConfigPath, "config", "c", constants.ConfigFileName,
		"Output path for the config file")
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&initNoFixture, "no-fixture", false, "Skip writing the sample fixture")
	cmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	format := constants.OutputFormatText
	analyses := []string{constants.AnalysisReachingDefs, constants.AnalysisLiveVars}

	if initInteractive {
		var err error
		format, analyses, err = runInteractiveSetup()
		if err != nil {
			return err
		}
	}

	if !initForce {
		if _, err := os.Stat(initConfigPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", initConfigPath)
		}
	}

	content := config.DefaultConfigYAML
	if initInteractive {
		content = renderConfigYAML(format, analyses)
	}
	if err := os.WriteFile(initConfigPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := initConfigPath
	if abs, err := filepath.Abs(initConfigPath); err == nil {
		displayPath = abs
	}
	fmt.Printf("Created %s\n", displayPath)

	if !initNoFixture {
		fixturePath := "sample.json"
		if err := os.WriteFile(fixturePath, []byte(config.SampleFixtureJSON), 0o644); err != nil {
			return fmt.Errorf("failed to write sample fixture: %w", err)
		}
		fmt.Printf("Created %s\n", fixturePath)
	}

	fmt.Println("\nRun 'slangflow analyze .' to analyze your fixtures.")
	return nil
}

// runInteractiveSetup prompts for the default output format and which
// analyses to enable, using promptui.Select with custom templates for
// both prompts.
func runInteractiveSetup() (string, []string, error) {
	fmt.Println()
	fmt.Println("slangflow Configuration Setup")
	fmt.Println("=============================")
	fmt.Println()

	formats := []struct {
		Label string
		Value string
	}{
		{"Text (human-readable)", constants.OutputFormatText},
		{"JSON (machine-readable)", constants.OutputFormatJSON},
		{"DOT (Graphviz)", constants.OutputFormatDOT},
	}
	formatTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }}",
		Inactive: "   {{ .Label | white }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}
	formatPrompt := promptui.Select{Label: "Default output format", Items: formats, Templates: formatTemplates}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return "", nil, fmt.Errorf("format selection cancelled: %w", err)
	}
	selectedFormat := formats[formatIdx].Value

	fmt.Println()

	analysisChoices := []struct {
		Label string
		Value []string
	}{
		{"Both (reaching definitions + live variables)", []string{constants.AnalysisReachingDefs, constants.AnalysisLiveVars}},
		{"Reaching definitions only", []string{constants.AnalysisReachingDefs}},
		{"Live variables only", []string{constants.AnalysisLiveVars}},
	}
	analysisTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }}",
		Inactive: "   {{ .Label | white }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}
	analysisPrompt := promptui.Select{Label: "Analyses to enable by default", Items: analysisChoices, Templates: analysisTemplates}
	analysisIdx, _, err := analysisPrompt.Run()
	if err != nil {
		return "", nil, fmt.Errorf("analysis selection cancelled: %w", err)
	}

	return selectedFormat, analysisChoices[analysisIdx].Value, nil
}

// renderConfigYAML marshals the chosen interactive settings into the same
// on-disk shape config.LoadConfig reads back.
func renderConfigYAML(format string, analyses []string) string {
	cfg := config.Config{
		Output:   config.OutputConfig{Format: format},
		Solver:   config.SolverConfig{IterationCapMultiplier: constants.DefaultIterationCapMultiplier},
		Analysis: config.AnalysisConfig{Enabled: analyses},
	}
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return config.DefaultConfigYAML
	}
	return "# slangflow configuration\n" + string(out)
}
