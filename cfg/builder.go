package cfg

import (
	"io"
	"log"

	"github.com/slang-lang/slangflow/hlir"
)

type loopContext struct {
	continueTarget int
	breakTarget    int
}

// Builder translates structured HLIR control flow into an unstructured
// graph of BasicBlocks. It owns a monotonically increasing block-id
// counter, a "current" open block statements are appended to, and a stack
// of loop contexts for Break/Continue targets.
//
// Uses a stateful-traversal shape: a current block, a loop-context stack,
// and one build method per statement kind, with blocks addressed by an
// int-id arena rather than pointers so cyclic control flow (loops) stays
// straightforward to wire (see DESIGN.md).
type Builder struct {
	cfg     *CFG
	current *BasicBlock // nil when no live block exists
	nextID  int
	loops   []loopContext
	logger  *log.Logger

	discarded int // count of statements dropped because current was nil
}

// NewBuilder returns a Builder that logs discarded-statement diagnostics to
// logger. A nil logger discards them silently.
func NewBuilder(logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Builder{logger: logger}
}

// BuildUnit produces the CFG of a compilation unit's top-level statements.
// Function and struct declarations are not inlined; call BuildFunction on
// their FunctionDecl nodes directly when their own CFG is needed.
func (b *Builder) BuildUnit(unit *hlir.CompilationUnit) (*CFG, error) {
	return b.build(unit.Stmts)
}

// BuildFunction produces the CFG of a single function body.
func (b *Builder) BuildFunction(fn *hlir.FunctionDecl) (*CFG, error) {
	var stmts []hlir.Stmt
	if fn.Body != nil {
		stmts = fn.Body.Stmts
	}
	return b.build(stmts)
}

// DiscardedCount reports how many statements were dropped because no live
// block existed at the point they were reached. Only meaningful after a
// BuildUnit/BuildFunction call; a fresh Builder is required per build.
func (b *Builder) DiscardedCount() int {
	return b.discarded
}

func (b *Builder) build(stmts []hlir.Stmt) (*CFG, error) {
	b.cfg = &CFG{Blocks: map[int]*BasicBlock{}}

	entry := b.newBlock()
	b.cfg.Entry = entry.ID
	b.current = entry

	exit := b.newBlock()
	b.cfg.Exit = exit.ID

	if err := b.buildStmts(stmts); err != nil {
		return nil, err
	}

	// Natural fallthrough: any path that reaches the end of the unit or
	// function body without an explicit Return exits implicitly.
	if b.current != nil {
		b.current.addSucc(exit.ID, EdgeNormal)
	}

	b.prune()
	b.recomputePredecessors()
	if err := b.checkInvariants(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

func (b *Builder) newBlock() *BasicBlock {
	blk := &BasicBlock{ID: b.nextID}
	b.nextID++
	b.cfg.Blocks[blk.ID] = blk
	return blk
}

func (b *Builder) exitBlock() *BasicBlock {
	return b.cfg.Blocks[b.cfg.Exit]
}

// appendLive appends a statement to the current block, or logs its
// discard when no live block exists. This builder never materializes an
// "unreachable placeholder" block; it simply drops statements that no
// live path reaches.
func (b *Builder) appendLive(s hlir.Stmt) bool {
	if b.current == nil {
		b.discarded++
		b.logger.Printf("cfg: discarding unreachable statement: %s", hlir.PrettyStmt(s))
		return false
	}
	b.current.Stmts = append(b.current.Stmts, s)
	return true
}

func (b *Builder) buildStmts(stmts []hlir.Stmt) error {
	for _, s := range stmts {
		if err := b.buildStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) buildStmt(s hlir.Stmt) error {
	switch n := s.(type) {
	case *hlir.FunctionDecl, *hlir.StructDecl:
		// Recorded as a nested unit, never embedded in the enclosing
		// control flow; elided from the block stream entirely rather
		// than kept as a placeholder. Reachability of the current
		// block is irrelevant to a declaration.
		return nil
	case *hlir.Block:
		return b.buildStmts(n.Stmts)
	case *hlir.Let, *hlir.Assign, *hlir.DerefAssign, *hlir.ExprStmt, *hlir.Print:
		b.appendLive(s)
		return nil
	case *hlir.Return:
		return b.buildReturn(n)
	case *hlir.If:
		return b.buildIf(n)
	case *hlir.While:
		return b.buildWhile(n)
	case *hlir.Break:
		return b.buildBreak(n)
	case *hlir.Continue:
		return b.buildContinue(n)
	default:
		return &BuildError{Category: InvariantViolation, Msg: "unhandled statement kind in CFG builder"}
	}
}

func (b *Builder) buildReturn(n *hlir.Return) error {
	if b.current == nil {
		b.discarded++
		b.logger.Printf("cfg: discarding unreachable statement: %s", hlir.PrettyStmt(n))
		return nil
	}
	b.current.Stmts = append(b.current.Stmts, n)
	b.current.addSucc(b.cfg.Exit, EdgeReturn)
	b.current = nil
	return nil
}

func (b *Builder) buildBreak(n *hlir.Break) error {
	if len(b.loops) == 0 {
		return &BuildError{Category: MalformedControlFlow, Stmt: n, Msg: "break outside any loop"}
	}
	if b.current == nil {
		b.discarded++
		b.logger.Printf("cfg: discarding unreachable statement: %s", hlir.PrettyStmt(n))
		return nil
	}
	target := b.loops[len(b.loops)-1].breakTarget
	b.current.addSucc(target, EdgeBreak)
	b.current = nil
	return nil
}

func (b *Builder) buildContinue(n *hlir.Continue) error {
	if len(b.loops) == 0 {
		return &BuildError{Category: MalformedControlFlow, Stmt: n, Msg: "continue outside any loop"}
	}
	if b.current == nil {
		b.discarded++
		b.logger.Printf("cfg: discarding unreachable statement: %s", hlir.PrettyStmt(n))
		return nil
	}
	target := b.loops[len(b.loops)-1].continueTarget
	b.current.addSucc(target, EdgeContinue)
	b.current = nil
	return nil
}

// buildIf wires the classic then/else/join shape. Both arms always get
// their own entry block, synthesized empty when the arm is absent or has
// no statements, so the join always has a well-defined set of live
// predecessors.
func (b *Builder) buildIf(n *hlir.If) error {
	if b.current == nil {
		b.discarded++
		b.logger.Printf("cfg: discarding unreachable statement: %s", hlir.PrettyStmt(n))
		return nil
	}
	pred := b.current
	pred.Stmts = append(pred.Stmts, n)

	thenEntry := b.newBlock()
	pred.addSucc(thenEntry.ID, EdgeCondTrue)
	b.current = thenEntry
	if n.Then != nil {
		if err := b.buildStmts(n.Then.Stmts); err != nil {
			return err
		}
	}
	thenExit := b.current

	elseEntry := b.newBlock()
	pred.addSucc(elseEntry.ID, EdgeCondFalse)
	b.current = elseEntry
	if n.Else != nil {
		if err := b.buildStmts(n.Else.Stmts); err != nil {
			return err
		}
	}
	elseExit := b.current

	if thenExit == nil && elseExit == nil {
		b.current = nil
		return nil
	}
	join := b.newBlock()
	if thenExit != nil {
		thenExit.addSucc(join.ID, EdgeNormal)
	}
	if elseExit != nil {
		elseExit.addSucc(join.ID, EdgeNormal)
	}
	b.current = join
	return nil
}

// buildWhile wires header/body/after with a back-edge from the body's
// natural exit to the header. A literal-true condition omits the
// structural false edge and a literal-false condition omits the structural
// true edge, so "while(true){}" with no break correctly prunes `after` as
// unreachable rather than leaving it trivially reachable through a false
// edge the condition can never take.
func (b *Builder) buildWhile(n *hlir.While) error {
	if b.current == nil {
		b.discarded++
		b.logger.Printf("cfg: discarding unreachable statement: %s", hlir.PrettyStmt(n))
		return nil
	}
	pred := b.current
	header := b.newBlock()
	pred.addSucc(header.ID, EdgeNormal)
	header.Stmts = append(header.Stmts, n)

	bodyEntry := b.newBlock()
	after := b.newBlock()

	switch literalBool(n.Cond) {
	case litTrue:
		header.addSucc(bodyEntry.ID, EdgeCondTrue)
	case litFalse:
		header.addSucc(after.ID, EdgeCondFalse)
	default:
		header.addSucc(bodyEntry.ID, EdgeCondTrue)
		header.addSucc(after.ID, EdgeCondFalse)
	}

	b.loops = append(b.loops, loopContext{continueTarget: header.ID, breakTarget: after.ID})
	b.current = bodyEntry
	if n.Body != nil {
		if err := b.buildStmts(n.Body.Stmts); err != nil {
			return err
		}
	}
	bodyExit := b.current
	if bodyExit != nil {
		bodyExit.addSucc(header.ID, EdgeLoop)
	}
	b.loops = b.loops[:len(b.loops)-1]

	b.current = after
	return nil
}

type litTri int

const (
	litUnknown litTri = iota
	litTrue
	litFalse
)

func literalBool(e hlir.Expr) litTri {
	lit, ok := e.(*hlir.Literal)
	if !ok || lit.Kind != hlir.LiteralBool {
		return litUnknown
	}
	if lit.Bool {
		return litTrue
	}
	return litFalse
}

// prune removes every block not reachable from entry via successor edges.
// The designated entry and exit blocks are always kept even if the sweep
// would otherwise drop exit (a function whose every path loops forever
// with no break and no return has no live path to exit; the graph still
// exposes an isolated exit block rather than omitting the designated id
// entirely).
func (b *Builder) prune() {
	reached := map[int]bool{b.cfg.Entry: true}
	stack := []int{b.cfg.Entry}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		blk := b.cfg.Blocks[id]
		for _, succID := range blk.successorIDs() {
			if !reached[succID] {
				reached[succID] = true
				stack = append(stack, succID)
			}
		}
	}
	reached[b.cfg.Exit] = true

	for id := range b.cfg.Blocks {
		if !reached[id] {
			delete(b.cfg.Blocks, id)
		}
	}
}

func (b *Builder) recomputePredecessors() {
	for _, blk := range b.cfg.Blocks {
		blk.Pred = nil
	}
	for _, id := range b.cfg.BlockIDs() {
		blk := b.cfg.Blocks[id]
		for _, e := range blk.Succ {
			if succ, ok := b.cfg.Blocks[e.To]; ok {
				succ.Pred = append(succ.Pred, id)
			}
		}
	}
}

func (b *Builder) checkInvariants() error {
	entry, ok := b.cfg.Block(b.cfg.Entry)
	if !ok {
		return &BuildError{Category: InvariantViolation, Msg: "entry block missing after construction"}
	}
	if len(entry.Pred) != 0 {
		return &BuildError{Category: InvariantViolation, Msg: "entry block has predecessors"}
	}
	exit, ok := b.cfg.Block(b.cfg.Exit)
	if !ok {
		return &BuildError{Category: InvariantViolation, Msg: "exit block missing after construction"}
	}
	if len(exit.Succ) != 0 {
		return &BuildError{Category: InvariantViolation, Msg: "exit block has successors"}
	}
	for id, blk := range b.cfg.Blocks {
		for _, e := range blk.Succ {
			succ, ok := b.cfg.Block(e.To)
			if !ok {
				return &BuildError{Category: InvariantViolation, Msg: "successor references missing block"}
			}
			found := false
			for _, p := range succ.Pred {
				if p == id {
					found = true
					break
				}
			}
			if !found {
				return &BuildError{Category: InvariantViolation, Msg: "predecessor/successor set mismatch"}
			}
		}
	}
	return nil
}
