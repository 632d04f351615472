// Package step defines the provisioning step data model.
//
// A [Step] is a named, independently executable unit of provisioning work
// with a human-facing prompt. Steps are registered once at process start in
// a [Registry], selected by the operator into a [Selection], and frozen into
// a [Plan] before anything executes.
//
// Key types:
//   - [Step] pairs a stable id and prompt with an executable [Action]
//   - [Registry] holds the ordered set of registered steps
//   - [Selection] records the operator's yes/no answer per step id
//   - [Plan] is the frozen ordered subsequence of selected steps
package step

import (
	"context"
	"errors"
	"fmt"
)

// ErrDuplicateID is returned by [Registry.Register] when a step id is
// already present. Step ids are programmer-assigned and static, so hitting
// this at runtime indicates a catalog bug and should be fatal at startup.
var ErrDuplicateID = errors.New("duplicate step id")

// Action performs the step's work.
//
// It returns whatever diagnostic text the underlying tooling wrote to its
// error channel, plus an error if the work could not run or exited non-zero.
// Diagnostic text is not necessarily a failure signal; classification is the
// runner's job, not the action's.
type Action func(ctx context.Context) (diagnostics string, err error)

// Step is a single provisioning step.
//
// Steps are immutable once registered: the engine never mutates a Step, and
// no step reads another step's result.
type Step struct {
	// ID is the unique, stable key for this step (e.g., "docker").
	ID string

	// Prompt is the human-facing question shown when collecting the
	// operator's selection, without the trailing "(y/n)" decoration.
	Prompt string

	// Action executes the step's work.
	Action Action
}

// Registry holds the ordered list of registered steps.
//
// Registration order is execution order. The zero value is not usable; call
// [NewRegistry].
type Registry struct {
	steps []Step
	ids   map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]struct{})}
}

// Register adds a step to the registry.
//
// It returns [ErrDuplicateID] if the step's id is already registered, and an
// error for an empty id or nil action.
func (r *Registry) Register(s Step) error {
	if s.ID == "" {
		return errors.New("step id must not be empty")
	}
	if s.Action == nil {
		return fmt.Errorf("step %q has no action", s.ID)
	}
	if _, ok := r.ids[s.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
	}
	r.ids[s.ID] = struct{}{}
	r.steps = append(r.steps, s)
	return nil
}

// All returns the registered steps in registration order.
//
// The returned slice is a copy; iterating it repeatedly always yields the
// same order.
func (r *Registry) All() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Len returns the number of registered steps.
func (r *Registry) Len() int {
	return len(r.steps)
}
