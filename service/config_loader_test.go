package service

import (
	"os"
	"testing"

	"github.com/slang-lang/slangflow/internal/config"
)

func TestNewConfigurationLoader(t *testing.T) {
	if NewConfigurationLoader() == nil {
		t.Fatal("NewConfigurationLoader should not return nil")
	}
}

func TestConfigurationLoader_LoadDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	cfg, err := NewConfigurationLoader().Load("", Overrides{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != config.DefaultConfig().Output.Format {
		t.Errorf("expected default format, got %q", cfg.Output.Format)
	}
}

func TestConfigurationLoader_AppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	cfg, err := NewConfigurationLoader().Load("", Overrides{
		Format:                 "json",
		IterationCapMultiplier: 42,
		Analyses:               []string{"livevars"},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected format override to apply, got %q", cfg.Output.Format)
	}
	if cfg.Solver.IterationCapMultiplier != 42 {
		t.Errorf("expected iteration cap override to apply, got %d", cfg.Solver.IterationCapMultiplier)
	}
	if len(cfg.Analysis.Enabled) != 1 || cfg.Analysis.Enabled[0] != "livevars" {
		t.Errorf("expected analyses override to apply, got %v", cfg.Analysis.Enabled)
	}
}

func TestConfigurationLoader_RejectsInvalidOverride(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	if _, err := NewConfigurationLoader().Load("", Overrides{Format: "xml"}); err == nil {
		t.Fatal("expected error for invalid format override")
	}
}
