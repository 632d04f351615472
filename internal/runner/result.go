package runner

import "time"

// Status represents the execution state of a step.
//
// A step moves Pending -> Running -> {Succeeded, Failed}. Terminal states
// are final: a failed step is not retried within the same run, the operator
// re-invokes the tool instead (the catalog is written to be re-run safe).
type Status string

const (
	// StatusPending indicates the step has not started.
	StatusPending Status = "pending"
	// StatusRunning indicates the step's action is executing.
	StatusRunning Status = "running"
	// StatusSucceeded indicates the step completed without a classified failure.
	StatusSucceeded Status = "succeeded"
	// StatusFailed indicates the step's action signaled failure.
	StatusFailed Status = "failed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status is a final state.
func (s Status) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Result captures the outcome of executing a single step.
//
// One Result is produced per executed step and appended to the run's ordered
// result log. Results are never mutated after creation.
type Result struct {
	// StepID identifies the step this result belongs to.
	StepID string

	// Status is the step's terminal state.
	Status Status

	// Message carries the diagnostic text the action produced, or the
	// execution error for steps that could not run at all.
	Message string

	// Duration is how long the action took.
	Duration time.Duration
}

// Succeeded reports whether the step completed successfully.
func (r Result) Succeeded() bool {
	return r.Status == StatusSucceeded
}
