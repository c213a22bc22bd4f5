package dataflow

import (
	"testing"

	"github.com/slang-lang/slangflow/cfg"
	"github.com/slang-lang/slangflow/hlir"
)

// reachabilityAnalysis is a minimal forward analysis used to exercise the
// solver independent of the built-in analyses: its fact is "is this block
// reachable", propagated as a bool under OR-meet.
type reachabilityAnalysis struct{}

func (reachabilityAnalysis) Direction() Direction { return Forward }
func (reachabilityAnalysis) Initial() bool        { return true }
func (reachabilityAnalysis) Boundary() bool       { return false }
func (reachabilityAnalysis) Meet(values []bool, _ *cfg.BasicBlock) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}
func (reachabilityAnalysis) Transfer(in bool, _ *cfg.BasicBlock) bool { return in }
func (reachabilityAnalysis) Equal(a, b bool) bool                    { return a == b }

func buildSimpleCFG(t *testing.T) *cfg.CFG {
	t.Helper()
	unit := &hlir.CompilationUnit{Stmts: []hlir.Stmt{
		&hlir.Let{Name: "x", Value: &hlir.Literal{Kind: hlir.LiteralNumber, Num: 10}},
		&hlir.Print{Args: []hlir.Expr{&hlir.VarRef{Name: "x"}}},
	}}
	g, err := cfg.NewBuilder(nil).BuildUnit(unit)
	if err != nil {
		t.Fatalf("BuildUnit: %v", err)
	}
	return g
}

func TestSolve_AllBlocksReachable(t *testing.T) {
	g := buildSimpleCFG(t)
	result, err := Solve[bool](g, reachabilityAnalysis{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for _, id := range g.BlockIDs() {
		f, ok := result.At(id)
		if !ok {
			t.Fatalf("missing facts for block %d", id)
		}
		if !f.Out {
			t.Fatalf("block %d expected reachable OUT=true", id)
		}
	}
}

func TestSolve_IsFixedPoint(t *testing.T) {
	g := buildSimpleCFG(t)
	result, err := Solve[bool](g, reachabilityAnalysis{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	// Re-running one transfer over every block must produce no change:
	// that's what being at a fixed point means.
	for _, id := range g.BlockIDs() {
		f := result.Facts[id]
		again := reachabilityAnalysis{}.Transfer(f.In, g.Blocks[id])
		if again != f.Out {
			t.Fatalf("block %d not a fixed point: transfer(%v) = %v, want %v", id, f.In, again, f.Out)
		}
	}
}
