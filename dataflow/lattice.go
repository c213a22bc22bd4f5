// Package dataflow implements a generic, direction-parameterized monotone
// dataflow worklist solver. It is agnostic to the fact type: an Analysis[L]
// supplies the lattice operations (meet, transfer, initial, boundary,
// direction, equality) and Solve performs the fixed-point iteration.
//
// This realizes the classic worklist algorithm as one solver parameterized
// over an arbitrary lattice via Go generics, rather than a pair of
// hardcoded bitset analyses.
package dataflow

import "github.com/slang-lang/slangflow/cfg"

// Direction selects whether facts flow from entry to exit or the reverse.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Analysis defines a monotone dataflow problem over fact type L. Meet must
// be commutative, associative, idempotent, and monotone; Transfer must be
// monotone; Equal must be a true value-equality test (not pointer
// identity), since the solver uses it to detect a fixed point.
type Analysis[L any] interface {
	// Direction reports whether this analysis runs forward or backward.
	Direction() Direction
	// Initial is the value pinned at the boundary block (entry for
	// forward, exit for backward) before any transfer runs.
	Initial() L
	// Boundary is the starting value at every non-boundary block.
	Boundary() L
	// Meet combines facts gathered from a block's relevant neighbors
	// (predecessors' OUT for forward, successors' IN for backward). It
	// must return the meet identity when values is empty.
	Meet(values []L, block *cfg.BasicBlock) L
	// Transfer computes a block's outgoing fact (forward) or incoming
	// fact (backward) from its gathered-and-met fact.
	Transfer(in L, block *cfg.BasicBlock) L
	// Equal reports whether two facts are the same value, used to detect
	// a fixed point.
	Equal(a, b L) bool
}
