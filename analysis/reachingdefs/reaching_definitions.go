// Package reachingdefs implements forward reaching-definitions analysis:
// for each program point, which assignments to each variable might still
// be live (not yet overwritten) at that point. A gen/kill-per-statement
// fixed point is computed over bitsets keyed by (block-id,
// statement-index) pairs rather than statement pointer identity, since
// HLIR nodes are rebuilt on every call and are not stable pointer
// identities across builds.
package reachingdefs

import (
	"github.com/slang-lang/slangflow/cfg"
	"github.com/slang-lang/slangflow/dataflow"
	"github.com/slang-lang/slangflow/dataflow/factset"
	"github.com/slang-lang/slangflow/hlir"
)

// DefSite is a definition site: the (block, statement-index) coordinate at
// which a Let or Assign binds Name.
type DefSite struct {
	Block int
	Stmt  int
	Name  string
}

// Analysis is a forward, union-meet reaching-definitions problem over a
// single CFG's fact universe.
type Analysis struct {
	universe *factset.Universe[DefSite]
}

// NewAnalysis returns a fresh analysis instance with its own fact
// universe. An instance must not be reused across different CFGs.
func NewAnalysis() *Analysis {
	return &Analysis{universe: factset.NewUniverse[DefSite]()}
}

// Universe exposes the shared fact universe, so callers (pretty-printers,
// tests) can enumerate DefSite values by index without re-deriving them.
func (a *Analysis) Universe() *factset.Universe[DefSite] {
	return a.universe
}

func (a *Analysis) Direction() dataflow.Direction { return dataflow.Forward }

func (a *Analysis) Initial() *factset.Set[DefSite] {
	return factset.NewSet(a.universe)
}

func (a *Analysis) Boundary() *factset.Set[DefSite] {
	return factset.NewSet(a.universe)
}

func (a *Analysis) Meet(values []*factset.Set[DefSite], _ *cfg.BasicBlock) *factset.Set[DefSite] {
	return factset.Union(a.universe, values)
}

// Transfer walks a block's statements in order. For each Let(x,_) or
// Assign(x,_), every working definition site bound to x is killed, then
// the current site is generated.
func (a *Analysis) Transfer(in *factset.Set[DefSite], b *cfg.BasicBlock) *factset.Set[DefSite] {
	working := in.Clone()
	for i, s := range b.Stmts {
		name, ok := hlir.DefinedName(s)
		if !ok {
			continue
		}
		for _, site := range working.Items() {
			if site.Name == name {
				working.Remove(site)
			}
		}
		working.Add(DefSite{Block: b.ID, Stmt: i, Name: name})
	}
	return working
}

func (a *Analysis) Equal(x, y *factset.Set[DefSite]) bool {
	return x.Equal(y)
}

// Solve runs the reaching-definitions fixed point over g.
func Solve(g *cfg.CFG) (*Analysis, *dataflow.Result[*factset.Set[DefSite]], error) {
	a := NewAnalysis()
	result, err := dataflow.Solve[*factset.Set[DefSite]](g, a)
	if err != nil {
		return nil, nil, err
	}
	return a, result, nil
}
