package livevars

import (
	"testing"

	"github.com/slang-lang/slangflow/cfg"
	"github.com/slang-lang/slangflow/hlir"
)

func numLit(n float64) *hlir.Literal {
	return &hlir.Literal{Kind: hlir.LiteralNumber, Num: n}
}

// let x = 10; print(x); -- x is live between
// the two statements but dead after the block (no further reads).
func TestSolve_SingleBlock(t *testing.T) {
	unit := &hlir.CompilationUnit{Stmts: []hlir.Stmt{
		&hlir.Let{Name: "x", Value: numLit(10)},
		&hlir.Print{Args: []hlir.Expr{&hlir.VarRef{Name: "x"}}},
	}}
	g, err := cfg.NewBuilder(nil).BuildUnit(unit)
	if err != nil {
		t.Fatalf("BuildUnit: %v", err)
	}
	_, result, err := Solve(g)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	entryFacts := result.Facts[g.Entry]
	if entryFacts.In.Len() != 0 {
		t.Fatalf("IN(entry) should be empty, got %d", entryFacts.In.Len())
	}
	if entryFacts.Out.Len() != 0 {
		t.Fatalf("OUT(entry) should be empty, got %d", entryFacts.Out.Len())
	}
}

// n and r are live at the loop header.
func TestSolve_LoopHeaderLiveness(t *testing.T) {
	fn := &hlir.FunctionDecl{
		Name:   "f",
		Params: []string{"n"},
		Body: &hlir.Block{Stmts: []hlir.Stmt{
			&hlir.Let{Name: "r", Value: numLit(0)},
			&hlir.While{
				Cond: &hlir.Binary{Op: ">", Left: &hlir.VarRef{Name: "n"}, Right: numLit(0)},
				Body: &hlir.Block{Stmts: []hlir.Stmt{
					&hlir.Assign{
						Target: &hlir.VarLValue{Name: "r"},
						Value:  &hlir.Binary{Op: "+", Left: &hlir.VarRef{Name: "r"}, Right: &hlir.VarRef{Name: "n"}},
					},
					&hlir.Assign{
						Target: &hlir.VarLValue{Name: "n"},
						Value:  &hlir.Binary{Op: "-", Left: &hlir.VarRef{Name: "n"}, Right: numLit(1)},
					},
				}},
			},
			&hlir.Return{Value: &hlir.VarRef{Name: "r"}},
		}},
	}
	g, err := cfg.NewBuilder(nil).BuildFunction(fn)
	if err != nil {
		t.Fatalf("BuildFunction: %v", err)
	}

	var headerID int = -1
	for _, id := range g.BlockIDs() {
		for _, s := range g.Blocks[id].Stmts {
			if _, ok := s.(*hlir.While); ok {
				headerID = id
			}
		}
	}
	if headerID == -1 {
		t.Fatalf("could not locate loop header block")
	}

	_, result, err := Solve(g)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	in := result.Facts[headerID].In
	if !in.Has("n") || !in.Has("r") {
		t.Fatalf("expected n and r live at loop header, got %v", in.Items())
	}
}

func TestSolve_NothingLiveAfterReturn(t *testing.T) {
	fn := &hlir.FunctionDecl{
		Name: "f",
		Body: &hlir.Block{Stmts: []hlir.Stmt{
			&hlir.Return{Value: numLit(1)},
		}},
	}
	g, err := cfg.NewBuilder(nil).BuildFunction(fn)
	if err != nil {
		t.Fatalf("BuildFunction: %v", err)
	}
	_, result, err := Solve(g)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	exitFacts := result.Facts[g.Exit]
	if exitFacts.In.Len() != 0 || exitFacts.Out.Len() != 0 {
		t.Fatalf("nothing should be live at or after exit, got IN=%v OUT=%v", exitFacts.In.Items(), exitFacts.Out.Items())
	}
}
