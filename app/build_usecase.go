package app

import (
	"fmt"

	"github.com/slang-lang/slangflow/cfg"
)

// BuildUseCase builds a single HLIR fixture's CFG without running any
// dataflow analysis over it, the `build` command's core. This exercises
// cfg.Builder in isolation, useful for inspecting how a given fixture's
// control flow was translated before layering an analysis on top via
// `analyze`.
type BuildUseCase struct{}

// NewBuildUseCase returns a BuildUseCase.
func NewBuildUseCase() *BuildUseCase {
	return &BuildUseCase{}
}

// Execute loads a single fixture file and builds its CFG.
func (uc *BuildUseCase) Execute(file string) (*cfg.CFG, error) {
	unit, err := loadFixture(file)
	if err != nil {
		return nil, err
	}
	g, err := cfg.NewBuilder(nil).BuildUnit(unit)
	if err != nil {
		return nil, fmt.Errorf("failed to build CFG: %w", err)
	}
	return g, nil
}
