package app

import (
	"context"
	"path/filepath"
	"testing"
)

const breakOutsideLoopJSON = `{
  "stmts": [
    {"kind": "break", "fields": {}}
  ]
}`

func TestCheckUseCase_Execute_Passes(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "ok.json", simpleFixtureJSON)

	result, err := NewCheckUseCase().Execute(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.Passed {
		t.Errorf("expected passing result, got violations %+v", result.Violations)
	}
	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got %d", result.ExitCode)
	}
}

func TestCheckUseCase_Execute_DetectsMalformedControlFlow(t *testing.T) {
	dir := t.TempDir()
	bad := writeFixture(t, dir, "bad.json", breakOutsideLoopJSON)

	result, err := NewCheckUseCase().Execute(context.Background(), []string{dir})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Passed {
		t.Fatal("expected failing result")
	}
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1, got %d", result.ExitCode)
	}
	if len(result.Violations) != 1 || filepath.Base(result.Violations[0].File) != filepath.Base(bad) {
		t.Fatalf("unexpected violations: %+v", result.Violations)
	}
}
