package dataflow

import (
	"fmt"
	"strings"

	"github.com/slang-lang/slangflow/cfg"
)

// BlockFacts is the IN/OUT pair attached to a single block.
type BlockFacts[L any] struct {
	In  L
	Out L
}

// Result maps every block id in a CFG to its fixed-point IN/OUT facts.
type Result[L any] struct {
	Facts map[int]BlockFacts[L]
}

// At returns the facts for a block id, or the zero value and false if the
// id is not part of the analyzed CFG.
func (r *Result[L]) At(blockID int) (BlockFacts[L], bool) {
	f, ok := r.Facts[blockID]
	return f, ok
}

// Pretty renders a result as indented text, blocks in ascending id order,
// using renderFact to format each IN/OUT value. Diagnostic only, not a
// stable machine format.
func Pretty[L any](c *cfg.CFG, r *Result[L], renderFact func(L) string) string {
	var sb strings.Builder
	for _, id := range c.BlockIDs() {
		f := r.Facts[id]
		fmt.Fprintf(&sb, "B%d: IN=%s OUT=%s\n", id, renderFact(f.In), renderFact(f.Out))
	}
	return sb.String()
}
