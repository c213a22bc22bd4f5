package app

import (
	"context"
	"fmt"
	"time"

	"github.com/slang-lang/slangflow/cfg"
	"github.com/slang-lang/slangflow/domain"
	"github.com/slang-lang/slangflow/internal/version"
	"github.com/slang-lang/slangflow/service"
)

// CheckUseCase validates a batch of HLIR fixtures for CI/CD, for the one
// category of error this engine's core can detect statically: malformed
// control flow (Break/Continue outside any loop). Each fixture gets its
// own build attempt so one bad fixture never aborts the batch.
type CheckUseCase struct {
	loader *service.FixtureLoader
}

// NewCheckUseCase returns a CheckUseCase.
func NewCheckUseCase() *CheckUseCase {
	return &CheckUseCase{loader: service.NewFixtureLoader()}
}

// Execute resolves paths to fixture files and attempts to build each
// fixture's CFG, recording a violation (rather than aborting) for every
// fixture whose build fails. Unlike AnalyzeUseCase, a single bad fixture
// does not abort the batch: `check` exists precisely to report every
// failure in one pass, the way a CI job wants it.
func (uc *CheckUseCase) Execute(ctx context.Context, paths []string) (*domain.CheckResult, error) {
	start := time.Now()

	files, err := uc.loader.Resolve(paths)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fixture paths: %w", err)
	}

	var violations []domain.CheckViolation
	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		unit, err := loadFixture(file)
		if err != nil {
			violations = append(violations, domain.CheckViolation{
				File:     file,
				Category: "fixture load error",
				Message:  err.Error(),
			})
			continue
		}

		if _, err := cfg.NewBuilder(nil).BuildUnit(unit); err != nil {
			if be, ok := err.(*cfg.BuildError); ok {
				violations = append(violations, domain.CheckViolation{
					File:     file,
					Category: be.Category.String(),
					Message:  be.Error(),
				})
				continue
			}
			return nil, err
		}
	}

	result := &domain.CheckResult{
		Passed:     len(violations) == 0,
		Violations: violations,
		Summary: domain.CheckSummary{
			FixturesChecked: len(files),
			TotalViolations: len(violations),
		},
		DurationMs:  time.Since(start).Milliseconds(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Version:     version.Version,
	}
	if !result.Passed {
		result.ExitCode = 1
	}
	return result, nil
}
