package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/slang-lang/slangflow/cfg"
	"github.com/slang-lang/slangflow/hlir"
)

// edgeColors assigns a Graphviz color to each cfg.EdgeType.
var edgeColors = map[cfg.EdgeType]string{
	cfg.EdgeNormal:   "black",
	cfg.EdgeCondTrue:  "darkgreen",
	cfg.EdgeCondFalse: "crimson",
	cfg.EdgeLoop:      "darkorange",
	cfg.EdgeBreak:     "purple",
	cfg.EdgeContinue:  "steelblue",
	cfg.EdgeReturn:    "gray40",
}

// DOTFormatterConfig configures DOT rendering. RankDir is the one
// structural choice that matters for a basic-block graph.
type DOTFormatterConfig struct {
	// RankDir is the Graphviz layout direction: TB, LR, BT, RL.
	RankDir string
}

// DefaultDOTFormatterConfig returns sensible defaults.
func DefaultDOTFormatterConfig() *DOTFormatterConfig {
	return &DOTFormatterConfig{RankDir: "TB"}
}

// DOTFormatter renders a CFG as Graphviz DOT. Purely diagnostic, not a
// stable machine format, but deterministic across runs for equal input
// graphs.
type DOTFormatter struct {
	config *DOTFormatterConfig
}

// NewDOTFormatter returns a DOTFormatter; a nil config uses the defaults.
func NewDOTFormatter(config *DOTFormatterConfig) *DOTFormatter {
	if config == nil {
		config = DefaultDOTFormatterConfig()
	}
	return &DOTFormatter{config: config}
}

// Format writes g to w as a DOT digraph.
func (f *DOTFormatter) Format(w io.Writer, g *cfg.CFG) error {
	var sb strings.Builder
	sb.WriteString("digraph cfg {\n")
	fmt.Fprintf(&sb, "  rankdir=%s;\n", f.config.RankDir)
	sb.WriteString("  node [shape=box, fontname=\"monospace\"];\n")

	for _, id := range g.BlockIDs() {
		blk := g.Blocks[id]
		label := f.blockLabel(g, blk)
		shape := "box"
		if id == g.Entry || id == g.Exit {
			shape = "box, style=rounded"
		}
		fmt.Fprintf(&sb, "  B%d [label=%q, shape=%s];\n", id, label, shape)
	}

	for _, id := range g.BlockIDs() {
		blk := g.Blocks[id]
		edges := append([]cfg.Edge(nil), blk.Succ...)
		for _, e := range edges {
			color := edgeColors[e.Type]
			if color == "" {
				color = "black"
			}
			fmt.Fprintf(&sb, "  B%d -> B%d [color=%s, label=%q];\n", id, e.To, color, e.Type.String())
		}
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func (f *DOTFormatter) blockLabel(g *cfg.CFG, blk *cfg.BasicBlock) string {
	var lines []string
	switch blk.ID {
	case g.Entry:
		lines = append(lines, fmt.Sprintf("B%d (entry)", blk.ID))
	case g.Exit:
		lines = append(lines, fmt.Sprintf("B%d (exit)", blk.ID))
	default:
		lines = append(lines, fmt.Sprintf("B%d", blk.ID))
	}
	for _, s := range blk.Stmts {
		lines = append(lines, hlir.PrettyStmt(s))
	}
	return strings.Join(lines, "\\l") + "\\l"
}
