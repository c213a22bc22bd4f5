package service

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixtureFile(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(p, []byte(`{"stmts":[]}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestFixtureLoader_ResolveSingleFile(t *testing.T) {
	dir := t.TempDir()
	f := writeFixtureFile(t, dir, "one.json")

	got, err := NewFixtureLoader().Resolve([]string{f})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 1 || got[0] != f {
		t.Fatalf("expected [%s], got %v", f, got)
	}
}

func TestFixtureLoader_ResolveDirectory(t *testing.T) {
	dir := t.TempDir()
	a := writeFixtureFile(t, dir, "a.json")
	b := writeFixtureFile(t, dir, "sub/b.json")
	writeFixtureFile(t, dir, "notes.txt")

	got, err := NewFixtureLoader().Resolve([]string{dir})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 fixtures, got %v", got)
	}
	if got[0] != a || got[1] != b {
		t.Fatalf("expected sorted [%s %s], got %v", a, b, got)
	}
}

func TestFixtureLoader_RespectsIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	writeFixtureFile(t, dir, "keep.json")
	writeFixtureFile(t, dir, "skip.json")
	if err := os.WriteFile(filepath.Join(dir, ".slangflowignore"), []byte("skip.json\n"), 0o644); err != nil {
		t.Fatalf("WriteFile ignore: %v", err)
	}

	got, err := NewFixtureLoader().Resolve([]string{dir})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "keep.json" {
		t.Fatalf("expected only keep.json, got %v", got)
	}
}
