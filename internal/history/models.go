package history

import "time"

// RunStatus is the terminal state of a recorded engine run.
type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// Run is one recorded engine invocation.
type Run struct {
	ID         string
	CreatedAt  time.Time
	InputDir   string
	OutputDir  string
	Sample     string
	Distal     int
	Proximal   int
	SliceCount int
	Status     RunStatus
	ErrorText  string
	Results    []RunResult
}

// RunResult is the per-region outcome stored with a run.
type RunResult struct {
	ROIName string
	Status  string
	Copied  int
	Dest    string
	Reason  string
}
