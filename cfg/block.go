package cfg

import "github.com/slang-lang/slangflow/hlir"

// BasicBlock is a maximal straight-line run of statements with a single
// entry and a single exit control-flow-wise. A block never branches
// internally; the only control transfer happens at its end, via Succ.
//
// Successors and predecessors are stored as block ids rather than pointers
// (an arena-of-blocks design), since loop back-edges make the graph cyclic
// and id sets serialize and compare trivially.
type BasicBlock struct {
	ID    int
	Stmts []hlir.Stmt
	Succ  []Edge
	Pred  []int
}

func (b *BasicBlock) addSucc(to int, t EdgeType) {
	b.Succ = append(b.Succ, Edge{To: to, Type: t})
}

func (b *BasicBlock) successorIDs() []int {
	ids := make([]int, len(b.Succ))
	for i, e := range b.Succ {
		ids[i] = e.To
	}
	return ids
}
