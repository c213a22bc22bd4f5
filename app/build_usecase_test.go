package app

import "testing"

func TestBuildUseCase_Execute(t *testing.T) {
	dir := t.TempDir()
	f := writeFixture(t, dir, "simple.json", simpleFixtureJSON)

	g, err := NewBuildUseCase().Execute(f)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if g.Len() != 2 {
		t.Errorf("expected entry+exit = 2 blocks, got %d", g.Len())
	}
}

func TestBuildUseCase_Execute_MalformedControlFlow(t *testing.T) {
	dir := t.TempDir()
	f := writeFixture(t, dir, "bad.json", breakOutsideLoopJSON)

	if _, err := NewBuildUseCase().Execute(f); err == nil {
		t.Fatal("expected error for break outside any loop")
	}
}
