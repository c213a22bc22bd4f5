package domain

// ProgressManager reports progress for a batch of independent fixture
// operations (cmd/slangflow analyze over a directory). The core itself
// never reports progress; of the CLI commands, only analyze does.
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// TaskProgress tracks one running task started by a ProgressManager.
type TaskProgress interface {
	Increment(n int)
	Describe(description string)
	Complete()
}
