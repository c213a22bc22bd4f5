package cfg

import (
	"fmt"

	"github.com/slang-lang/slangflow/hlir"
)

// ErrorCategory classifies a build failure the way callers are expected to
// branch on it: a MalformedControlFlow error is a caller bug surfaced
// politely; an InvariantViolation indicates a bug in this package itself.
type ErrorCategory int

const (
	// MalformedControlFlow is Break/Continue used outside any loop.
	MalformedControlFlow ErrorCategory = iota
	// InvariantViolation is an assertion failure after construction:
	// pred/succ inconsistency, or a designated block gone missing.
	InvariantViolation
)

func (c ErrorCategory) String() string {
	switch c {
	case MalformedControlFlow:
		return "malformed control flow"
	case InvariantViolation:
		return "invariant violation"
	default:
		return "unknown"
	}
}

// BuildError is returned by Builder.BuildUnit and Builder.BuildFunction.
// Stmt is the offending node when known (nil for invariant violations that
// don't pin to a single statement).
type BuildError struct {
	Category ErrorCategory
	Stmt     hlir.Stmt
	Msg      string
	Err      error
}

func (e *BuildError) Error() string {
	if e.Stmt != nil {
		return fmt.Sprintf("cfg: %s: %s (at %s)", e.Category, e.Msg, hlir.PrettyStmt(e.Stmt))
	}
	if e.Err != nil {
		return fmt.Sprintf("cfg: %s: %s: %v", e.Category, e.Msg, e.Err)
	}
	return fmt.Sprintf("cfg: %s: %s", e.Category, e.Msg)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
