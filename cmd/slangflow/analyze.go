package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slang-lang/slangflow/app"
	"github.com/slang-lang/slangflow/dataflow"
	"github.com/slang-lang/slangflow/internal/constants"
	"github.com/slang-lang/slangflow/service"
)

var (
	analyzeSelect     []string
	analyzeFormat     string
	analyzeConfigPath string
	analyzeIncludeCFG bool
	analyzeIncludeDOT bool
	analyzeNoProgress bool
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path...]",
		Short: "Run dataflow analyses over HLIR fixtures",
		Long: `Analyze builds the CFG of each HLIR fixture under the given paths (a single
file or a directory of them, filtered through .slangflowignore) and runs the
selected dataflow analyses over it.

Examples:
  slangflow analyze fixtures/                       # all configured analyses
  slangflow analyze --select livevars fixtures/loop.json
  slangflow analyze --format json fixtures/ > report.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringSliceVarP(&analyzeSelect, "select", "s", nil,
		"Analyses to run (comma-separated): reachingdefs,livevars (default: config)")
	cmd.Flags().StringVarP(&analyzeFormat, "format", "f", "",
		"Output format: text, json (default: config)")
	cmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().BoolVar(&analyzeIncludeCFG, "cfg", false,
		"Include each fixture's pretty-printed CFG in the output")
	cmd.Flags().BoolVar(&analyzeIncludeDOT, "dot", false,
		"Include each fixture's Graphviz DOT rendering in the output")
	cmd.Flags().BoolVar(&analyzeNoProgress, "no-progress", false,
		"Disable the interactive progress bar")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ov := service.Overrides{Format: analyzeFormat}
	if cmd.Flags().Changed("select") {
		ov.Analyses = analyzeSelect
	}
	cfg, err := service.NewConfigurationLoader().Load(analyzeConfigPath, ov)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	dataflow.SetIterationCapMultiplier(cfg.Solver.IterationCapMultiplier)

	progress := service.NewProgressManager(!analyzeNoProgress && cfg.Output.Format != constants.OutputFormatJSON)
	defer progress.Close()

	result, err := app.NewAnalyzeUseCase().Execute(context.Background(), app.AnalyzeConfig{
		Analyses:       cfg.Analysis.Enabled,
		IncludeCFGText: analyzeIncludeCFG,
		IncludeDOT:     analyzeIncludeDOT,
		Progress:       progress,
	}, args)
	if err != nil {
		return err
	}

	return service.NewOutputFormatter().FormatAnalyzeResult(os.Stdout, result, cfg.Output.Format)
}
