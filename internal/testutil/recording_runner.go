package testutil

// RecordingRunner remembers every command line it is asked to run instead of running it.
type RecordingRunner struct {
	Commands []string
	// FailAt is the 1-based call that reports failure. Zero means every call succeeds.
	FailAt int
}

func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{}
}

// FailingRunner returns a recorder whose n-th call fails.
func FailingRunner(n int) *RecordingRunner {
	return &RecordingRunner{FailAt: n}
}

func (r *RecordingRunner) Run(command string) bool {
	r.Commands = append(r.Commands, command)
	return r.FailAt == 0 || len(r.Commands) != r.FailAt
}
