// Package livevars implements backward live-variables analysis: which
// variables might be read before their next write, at each program point.
// A use/def-per-statement fixed point is computed in reverse statement
// order over bitsets keyed by variable name, walking free variables via
// hlir.StmtUses/hlir.Uses (which additionally handles InlinedFunction
// parameter shadowing).
package livevars

import (
	"github.com/slang-lang/slangflow/cfg"
	"github.com/slang-lang/slangflow/dataflow"
	"github.com/slang-lang/slangflow/dataflow/factset"
	"github.com/slang-lang/slangflow/hlir"
)

// Analysis is a backward, union-meet live-variables problem over a single
// CFG's fact universe.
type Analysis struct {
	universe *factset.Universe[string]
}

// NewAnalysis returns a fresh analysis instance with its own fact
// universe. An instance must not be reused across different CFGs.
func NewAnalysis() *Analysis {
	return &Analysis{universe: factset.NewUniverse[string]()}
}

// Universe exposes the shared fact universe.
func (a *Analysis) Universe() *factset.Universe[string] {
	return a.universe
}

func (a *Analysis) Direction() dataflow.Direction { return dataflow.Backward }

func (a *Analysis) Initial() *factset.Set[string] {
	return factset.NewSet(a.universe)
}

func (a *Analysis) Boundary() *factset.Set[string] {
	return factset.NewSet(a.universe)
}

func (a *Analysis) Meet(values []*factset.Set[string], _ *cfg.BasicBlock) *factset.Set[string] {
	return factset.Union(a.universe, values)
}

// Transfer walks a block's statements in reverse order. For each
// statement the working set becomes (working \ def) ∪ use.
func (a *Analysis) Transfer(out *factset.Set[string], b *cfg.BasicBlock) *factset.Set[string] {
	working := out.Clone()
	for i := len(b.Stmts) - 1; i >= 0; i-- {
		s := b.Stmts[i]
		if name, ok := hlir.DefinedName(s); ok {
			working.Remove(name)
		}
		for _, u := range hlir.StmtUses(s) {
			working.Add(u)
		}
	}
	return working
}

func (a *Analysis) Equal(x, y *factset.Set[string]) bool {
	return x.Equal(y)
}

// Solve runs the live-variables fixed point over g.
func Solve(g *cfg.CFG) (*Analysis, *dataflow.Result[*factset.Set[string]], error) {
	a := NewAnalysis()
	result, err := dataflow.Solve[*factset.Set[string]](g, a)
	if err != nil {
		return nil, nil, err
	}
	return a, result, nil
}
