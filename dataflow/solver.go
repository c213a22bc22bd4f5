package dataflow

import (
	"fmt"

	"github.com/slang-lang/slangflow/cfg"
)

// SolveError is returned by Solve when the iteration-cap safety net trips.
// It always carries InvariantViolation: a correct, monotone analysis over
// a finite-height lattice is guaranteed to terminate well before the cap,
// so tripping it indicates either a non-monotone Transfer/Meet or a CFG
// invariant violation.
type SolveError struct {
	Category cfg.ErrorCategory
	Msg      string
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("dataflow: %s: %s", e.Category, e.Msg)
}

// iterationCapMultiplier is the "10" in the solver's safety net
// ("10 × |blocks| × |statements| transfers"). Exposed as a var, not a
// const, so the CLI's configuration layer can scale it for pathological
// fixtures without recompiling (see internal/config).
var iterationCapMultiplier = 10

// SetIterationCapMultiplier overrides the safety-net multiplier used by
// every subsequent Solve call. The analyze and check commands call it at
// startup with the value loaded by internal/config; not meant to be
// called mid-solve.
func SetIterationCapMultiplier(n int) {
	if n > 0 {
		iterationCapMultiplier = n
	}
}

// Solve runs the worklist fixed-point algorithm: IN/OUT are seeded to
// Boundary() everywhere, the boundary block's pinned
// side is seeded to Initial() and never overwritten, and blocks are
// reprocessed until no IN/OUT pair changes. Block enumeration order only
// affects the number of iterations to reach the fixed point, never the
// result, since Meet is required to be commutative and associative.
func Solve[L any](g *cfg.CFG, a Analysis[L]) (*Result[L], error) {
	boundaryID := g.Entry
	if a.Direction() == Backward {
		boundaryID = g.Exit
	}

	facts := make(map[int]BlockFacts[L], g.Len())
	for _, id := range g.BlockIDs() {
		facts[id] = BlockFacts[L]{In: a.Boundary(), Out: a.Boundary()}
	}
	if f, ok := facts[boundaryID]; ok {
		if a.Direction() == Forward {
			f.In = a.Initial()
		} else {
			f.Out = a.Initial()
		}
		facts[boundaryID] = f
	}

	ids := g.BlockIDs()
	queued := make(map[int]bool, len(ids))
	worklist := make([]int, 0, len(ids))
	for _, id := range ids {
		worklist = append(worklist, id)
		queued[id] = true
	}

	totalStmts := 0
	for _, id := range ids {
		totalStmts += len(g.Blocks[id].Stmts)
	}
	capLimit := iterationCapMultiplier * len(ids) * (totalStmts + 1)
	if capLimit <= 0 {
		capLimit = iterationCapMultiplier
	}

	transfers := 0
	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		queued[id] = false

		transfers++
		if transfers > capLimit {
			return nil, &SolveError{
				Category: cfg.InvariantViolation,
				Msg:      fmt.Sprintf("solver exceeded iteration cap (%d transfers); analysis is likely non-monotone", capLimit),
			}
		}

		blk := g.Blocks[id]
		f := facts[id]

		if a.Direction() == Forward {
			if id != boundaryID {
				gathered := make([]L, 0, len(blk.Pred))
				for _, p := range blk.Pred {
					gathered = append(gathered, facts[p].Out)
				}
				f.In = a.Meet(gathered, blk)
			}
			newOut := a.Transfer(f.In, blk)
			if !a.Equal(newOut, f.Out) {
				f.Out = newOut
				facts[id] = f
				for _, e := range blk.Succ {
					if !queued[e.To] {
						worklist = append(worklist, e.To)
						queued[e.To] = true
					}
				}
			} else {
				facts[id] = f
			}
		} else {
			if id != boundaryID {
				gathered := make([]L, 0, len(blk.Succ))
				for _, e := range blk.Succ {
					gathered = append(gathered, facts[e.To].In)
				}
				f.Out = a.Meet(gathered, blk)
			}
			newIn := a.Transfer(f.Out, blk)
			if !a.Equal(newIn, f.In) {
				f.In = newIn
				facts[id] = f
				for _, p := range blk.Pred {
					if !queued[p] {
						worklist = append(worklist, p)
						queued[p] = true
					}
				}
			} else {
				facts[id] = f
			}
		}
	}

	return &Result[L]{Facts: facts}, nil
}
