package step

import "fmt"

// Selection maps step ids to the operator's yes/no answer.
//
// A Selection is built once, before any execution, and must contain exactly
// one entry per registered step. It is read only when the [Plan] is derived
// and never consulted again afterwards.
type Selection map[string]bool

// SelectAll returns a Selection answering yes for every given step.
//
// Used by the assume-yes path, where the operator has opted out of per-step
// prompting.
func SelectAll(steps []Step) Selection {
	sel := make(Selection, len(steps))
	for _, s := range steps {
		sel[s.ID] = true
	}
	return sel
}

// Plan is the frozen, ordered list of steps to execute.
//
// A Plan is derived exactly once from a [Registry] and a [Selection]. The
// set of steps actually executed is exactly the Plan, in registry order; no
// step may be added or removed mid-run.
type Plan struct {
	steps []Step
}

// NewPlan derives a Plan from the registry and selection.
//
// Every registered step id must have an entry in the selection; a missing
// entry means the collection stage was skipped or interrupted, and NewPlan
// refuses to guess an answer for it.
func NewPlan(reg *Registry, sel Selection) (Plan, error) {
	var steps []Step
	for _, s := range reg.All() {
		selected, ok := sel[s.ID]
		if !ok {
			return Plan{}, fmt.Errorf("no selection recorded for step %q", s.ID)
		}
		if selected {
			steps = append(steps, s)
		}
	}
	return Plan{steps: steps}, nil
}

// Steps returns the planned steps in execution order.
func (p Plan) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Len returns the number of planned steps.
func (p Plan) Len() int {
	return len(p.steps)
}

// IsEmpty reports whether the plan contains no steps.
func (p Plan) IsEmpty() bool {
	return len(p.steps) == 0
}
