package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slang-lang/slangflow/app"
	"github.com/slang-lang/slangflow/dataflow"
	"github.com/slang-lang/slangflow/service"
)

// CheckExitError carries a CI/CD-meaningful process exit code out of
// runCheck without cobra printing a generic error alongside it.
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkFormat     string
	checkConfigPath string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Validate HLIR fixtures for control-flow errors",
		Long: `Check attempts to build every fixture under the given paths and reports a
violation for each one whose control flow is malformed (break/continue
used outside any loop) or that could not be loaded.

Exit codes:
  0 - every fixture built successfully
  1 - one or more fixtures had a control-flow violation or failed to load
  2 - the batch itself could not be resolved (bad path, config error)

Examples:
  slangflow check fixtures/
  slangflow check --format json fixtures/ > report.json`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&checkFormat, "format", "f", "", "Output format: text, json (default: config)")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "", "Path to config file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := service.NewConfigurationLoader().Load(checkConfigPath, service.Overrides{Format: checkFormat})
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}
	dataflow.SetIterationCapMultiplier(cfg.Solver.IterationCapMultiplier)

	result, err := app.NewCheckUseCase().Execute(context.Background(), args)
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	if err := service.NewOutputFormatter().FormatCheckResult(os.Stdout, result, cfg.Output.Format); err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	if !result.Passed {
		return &CheckExitError{Code: result.ExitCode}
	}
	return nil
}
