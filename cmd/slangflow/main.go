// Command slangflow is the CLI front door around this module's CFG
// construction and dataflow-analysis core: `build` exercises cfg.Builder
// alone, `analyze` layers the built-in analyses on top, and `check`
// validates a batch of fixtures for CI/CD.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slang-lang/slangflow/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "slangflow",
		Short:   "slangflow - CFG construction and dataflow analysis for Slang",
		Long:    `slangflow builds control-flow graphs from HLIR fixtures and runs reaching-definitions and live-variables dataflow analyses over them.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(*CheckExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("slangflow version %s\n", version.GetVersion())
			}
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
