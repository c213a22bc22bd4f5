package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/slang-lang/slangflow/analysis/livevars"
	"github.com/slang-lang/slangflow/analysis/reachingdefs"
	"github.com/slang-lang/slangflow/cfg"
	"github.com/slang-lang/slangflow/dataflow"
	"github.com/slang-lang/slangflow/dataflow/factset"
	"github.com/slang-lang/slangflow/domain"
	"github.com/slang-lang/slangflow/hlir"
	"github.com/slang-lang/slangflow/internal/constants"
	"github.com/slang-lang/slangflow/internal/version"
	"github.com/slang-lang/slangflow/service"
)

// AnalyzeConfig holds configuration for the analyze use case: which of
// this engine's built-in dataflow analyses to run and how much detail to
// include in each result.
type AnalyzeConfig struct {
	// Analyses lists which built-in analyses to run:
	// constants.AnalysisReachingDefs / constants.AnalysisLiveVars.
	Analyses []string
	// IncludeCFGText includes cfg.Pretty's indented-text rendering in
	// each result.
	IncludeCFGText bool
	// IncludeDOT includes a Graphviz DOT rendering of each result's CFG.
	IncludeDOT bool
	// Progress reports batch progress across fixtures; nil disables it.
	Progress domain.ProgressManager
}

// AnalyzeUseCase orchestrates CFG construction and dataflow analysis over
// a batch of HLIR fixtures, the `analyze` command's core: it resolves
// paths via service.FixtureLoader, then runs each fixture through
// cfg.Builder and dataflow.Solve.
type AnalyzeUseCase struct {
	loader *service.FixtureLoader
}

// NewAnalyzeUseCase returns an AnalyzeUseCase.
func NewAnalyzeUseCase() *AnalyzeUseCase {
	return &AnalyzeUseCase{loader: service.NewFixtureLoader()}
}

// Execute resolves paths to fixture files and analyzes each independently,
// aggregating a domain.BatchAnalyzeResult. A single fixture's build error
// aborts the whole batch: `analyze` assumes valid input, unlike `check`,
// which exists precisely to tolerate and report per-fixture failures.
func (uc *AnalyzeUseCase) Execute(ctx context.Context, config AnalyzeConfig, paths []string) (*domain.BatchAnalyzeResult, error) {
	files, err := uc.loader.Resolve(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fixture paths: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no fixture files found in the specified paths")
	}

	var task domain.TaskProgress
	if config.Progress != nil {
		task = config.Progress.StartTask("analyzing", len(files))
		defer task.Complete()
	}

	results := make([]domain.AnalyzeResult, 0, len(files))
	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := uc.analyzeFile(file, config)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		results = append(results, *result)
		if task != nil {
			task.Increment(1)
		}
	}

	return &domain.BatchAnalyzeResult{
		Results:     results,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Version:     version.Version,
	}, nil
}

func (uc *AnalyzeUseCase) analyzeFile(file string, config AnalyzeConfig) (*domain.AnalyzeResult, error) {
	unit, err := loadFixture(file)
	if err != nil {
		return nil, err
	}

	g, err := cfg.NewBuilder(nil).BuildUnit(unit)
	if err != nil {
		return nil, err
	}

	result := &domain.AnalyzeResult{
		File:       file,
		BlockCount: g.Len(),
	}
	if config.IncludeCFGText {
		result.CFGText = cfg.Pretty(g)
	}
	if config.IncludeDOT {
		var buf bytes.Buffer
		if err := service.NewDOTFormatter(nil).Format(&buf, g); err != nil {
			return nil, err
		}
		result.CFGDot = buf.String()
	}

	analyses := config.Analyses
	if analyses == nil {
		analyses = []string{constants.AnalysisReachingDefs, constants.AnalysisLiveVars}
	}
	for _, name := range analyses {
		switch name {
		case constants.AnalysisReachingDefs:
			a, res, err := reachingdefs.Solve(g)
			if err != nil {
				return nil, err
			}
			result.ReachingDefs = &domain.AnalysisSummary{Text: renderReachingDefs(g, a, res)}
		case constants.AnalysisLiveVars:
			a, res, err := livevars.Solve(g)
			if err != nil {
				return nil, err
			}
			result.LiveVariables = &domain.AnalysisSummary{Text: renderLiveVars(g, a, res)}
		}
	}

	return result, nil
}

// loadFixture reads and decodes a single HLIR fixture file from disk. The
// core itself never reads files; this is the CLI's stand-in for an
// out-of-scope parser/frontend, round-tripping through hlir/json.go's
// wire format.
func loadFixture(path string) (*hlir.CompilationUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	var unit hlir.CompilationUnit
	if err := unit.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &unit, nil
}

// renderReachingDefs renders a reaching-definitions result deterministically:
// blocks in ascending id order, def sites within a block's facts sorted by
// (block, stmt, name).
func renderReachingDefs(g *cfg.CFG, a *reachingdefs.Analysis, res *dataflow.Result[*factset.Set[reachingdefs.DefSite]]) string {
	return dataflow.Pretty(g, res, func(s *factset.Set[reachingdefs.DefSite]) string {
		items := s.Items()
		sort.Slice(items, func(i, j int) bool {
			if items[i].Block != items[j].Block {
				return items[i].Block < items[j].Block
			}
			if items[i].Stmt != items[j].Stmt {
				return items[i].Stmt < items[j].Stmt
			}
			return items[i].Name < items[j].Name
		})
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = fmt.Sprintf("%s@(B%d,%d)", it.Name, it.Block, it.Stmt)
		}
		return "{" + joinComma(parts) + "}"
	})
}

// renderLiveVars renders a live-variables result deterministically: block
// facts sorted alphabetically by variable name.
func renderLiveVars(g *cfg.CFG, a *livevars.Analysis, res *dataflow.Result[*factset.Set[string]]) string {
	return dataflow.Pretty(g, res, func(s *factset.Set[string]) string {
		items := s.Items()
		sort.Strings(items)
		return "{" + joinComma(items) + "}"
	})
}

func joinComma(items []string) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += ", "
		}
		out += it
	}
	return out
}
