package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slang-lang/slangflow/internal/constants"
)

const simpleFixtureJSON = `{
  "stmts": [
    {"kind": "let", "fields": {"name": "x", "value": {"kind": "literal", "fields": {"lkind": 0, "num": 10}}}},
    {"kind": "print", "fields": {"args": [{"kind": "var", "fields": {"name": "x"}}]}}
  ]
}`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestAnalyzeUseCase_Execute(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "simple.json", simpleFixtureJSON)

	result, err := NewAnalyzeUseCase().Execute(context.Background(), AnalyzeConfig{
		Analyses:       []string{constants.AnalysisReachingDefs, constants.AnalysisLiveVars},
		IncludeCFGText: true,
	}, []string{dir})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(result.Results))
	}
	r := result.Results[0]
	if r.BlockCount != 2 {
		t.Errorf("expected entry+exit = 2 blocks for straight-line fixture, got %d", r.BlockCount)
	}
	if r.ReachingDefs == nil || !strings.Contains(r.ReachingDefs.Text, "B0") {
		t.Errorf("expected reaching-defs text, got %+v", r.ReachingDefs)
	}
	if r.LiveVariables == nil {
		t.Errorf("expected live-variables summary")
	}
	if r.CFGText == "" {
		t.Errorf("expected CFG text when IncludeCFGText is set")
	}
}

func TestAnalyzeUseCase_Execute_NoFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewAnalyzeUseCase().Execute(context.Background(), AnalyzeConfig{}, []string{dir}); err == nil {
		t.Fatal("expected error for empty directory")
	}
}

func TestAnalyzeUseCase_Execute_IncludeDOT(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "simple.json", simpleFixtureJSON)

	result, err := NewAnalyzeUseCase().Execute(context.Background(), AnalyzeConfig{IncludeDOT: true}, []string{dir})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(result.Results[0].CFGDot, "digraph cfg {") {
		t.Errorf("expected DOT output, got %q", result.Results[0].CFGDot)
	}
}
