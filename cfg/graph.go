package cfg

import "sort"

// CFG is a directed graph of basic blocks produced once by Builder and
// immutable thereafter. Analyses attach external fact maps keyed by block
// id; they never mutate the graph itself.
type CFG struct {
	Entry  int
	Exit   int
	Blocks map[int]*BasicBlock
}

// Block looks up a block by id.
func (c *CFG) Block(id int) (*BasicBlock, bool) {
	b, ok := c.Blocks[id]
	return b, ok
}

// EntryBlock returns the designated entry block.
func (c *CFG) EntryBlock() *BasicBlock {
	return c.Blocks[c.Entry]
}

// ExitBlock returns the designated exit block.
func (c *CFG) ExitBlock() *BasicBlock {
	return c.Blocks[c.Exit]
}

// BlockIDs returns every block id in ascending order, the stable iteration
// order required for deterministic pretty-printing (spec'd determinism
// requirement: equal inputs produce byte-identical output across runs).
func (c *CFG) BlockIDs() []int {
	ids := make([]int, 0, len(c.Blocks))
	for id := range c.Blocks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len reports the number of blocks currently in the graph.
func (c *CFG) Len() int {
	return len(c.Blocks)
}
