package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slang-lang/slangflow/app"
	"github.com/slang-lang/slangflow/cfg"
	"github.com/slang-lang/slangflow/service"
)

var buildDOT bool

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <fixture>",
		Short: "Build a CFG from a single HLIR fixture",
		Long: `Build translates a single HLIR fixture's compilation unit into a CFG and
prints it, without running any dataflow analysis.

Examples:
  slangflow build fixtures/loop.json
  slangflow build --dot fixtures/loop.json | dot -Tpng -o loop.png`,
		Args: cobra.ExactArgs(1),
		RunE: runBuild,
	}
	cmd.Flags().BoolVar(&buildDOT, "dot", false, "Render the CFG as Graphviz DOT instead of indented text")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	g, err := app.NewBuildUseCase().Execute(args[0])
	if err != nil {
		return err
	}
	if buildDOT {
		return service.NewDOTFormatter(nil).Format(os.Stdout, g)
	}
	fmt.Print(cfg.Pretty(g))
	return nil
}
