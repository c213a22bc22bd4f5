// Package testutil provides helper functions for testing slangflow components.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/slang-lang/slangflow/hlir"
)

// WriteFixture writes content to name under dir and returns the full path.
func WriteFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual.
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("expected %v, got %v", expected, actual)
	}
}

// AssertTrue fails the test if condition is false.
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}

// AssertFalse fails the test if condition is true.
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Error(msg)
	}
}

// CountStmtsOfKind counts statements of a given concrete type within a
// block, recursing into nested If/While bodies.
func CountStmtsOfKind(block *hlir.Block, match func(hlir.Stmt) bool) int {
	count := 0
	var walk func(b *hlir.Block)
	walk = func(b *hlir.Block) {
		if b == nil {
			return
		}
		for _, s := range b.Stmts {
			if match(s) {
				count++
			}
			switch n := s.(type) {
			case *hlir.If:
				walk(n.Then)
				walk(n.Else)
			case *hlir.While:
				walk(n.Body)
			}
		}
	}
	walk(block)
	return count
}
