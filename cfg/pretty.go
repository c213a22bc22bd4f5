package cfg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/slang-lang/slangflow/hlir"
)

// Pretty renders a CFG as indented, human-readable text: blocks in
// ascending id order, each with its statements and successor edges sorted
// by target id. The format is diagnostic only, not a stable machine
// format, but it is deterministic across runs for equal input graphs
// (block id ordering, successor enumeration are both sorted on demand).
func Pretty(c *CFG) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "entry: B%d, exit: B%d\n", c.Entry, c.Exit)
	for _, id := range c.BlockIDs() {
		blk := c.Blocks[id]
		fmt.Fprintf(&sb, "B%d:\n", id)
		for i, s := range blk.Stmts {
			fmt.Fprintf(&sb, "  [%d] %s\n", i, hlir.PrettyStmt(s))
		}
		preds := append([]int(nil), blk.Pred...)
		sort.Ints(preds)
		fmt.Fprintf(&sb, "  pred: %s\n", formatIDs(preds))

		succs := append([]Edge(nil), blk.Succ...)
		sort.Slice(succs, func(i, j int) bool { return succs[i].To < succs[j].To })
		parts := make([]string, len(succs))
		for i, e := range succs {
			parts[i] = fmt.Sprintf("B%d(%s)", e.To, e.Type)
		}
		fmt.Fprintf(&sb, "  succ: %s\n", strings.Join(parts, ", "))
	}
	return sb.String()
}

func formatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("B%d", id)
	}
	return strings.Join(parts, ", ")
}
