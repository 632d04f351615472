// Package runner executes a frozen plan of provisioning steps.
//
// The [Runner] runs steps strictly one after another, in plan order. Failure
// isolation is a first-class property: a failing step is recorded and the
// run continues, because later steps are independent units that must never
// be blocked by an earlier, unrelated failure. Only the confirmation gate,
// which fires before any step runs, can abort a run.
//
// Whether a step failed is decided by a pluggable [Classifier] over the
// action's diagnostic text, plus the action's own error. The classifier's
// known-signature heuristic is documented on [DefaultClassifier].
package runner

import (
	"context"
	"time"

	"github.com/norelnorel3/ubuntu-setup-script/internal/step"
)

// Reporter renders live feedback while a step's action runs.
//
// Observe blocks until done is closed, rendering whatever feedback it wants
// along the way. Reporters are purely cosmetic: the runner joins on the
// action itself, never on the reporter, so a reporter that returns early
// (or does nothing at all) has no effect on execution or results. The
// [progress.Bar] type implements this interface; tests use [NopReporter].
type Reporter interface {
	Observe(done <-chan struct{}, label string)
}

// NopReporter is a Reporter that renders nothing. It is the default when no
// reporter is configured and the standard choice in tests.
type NopReporter struct{}

// Observe returns immediately without rendering.
func (NopReporter) Observe(done <-chan struct{}, label string) {}

// ProgressCallback is invoked before each step begins execution.
//
// The callback receives stepIndex (1-based), totalSteps count, and the step
// id. This enables per-step progress headers in the UI. The callback is
// optional and can be set via [Runner.SetProgressCallback].
type ProgressCallback func(stepIndex, totalSteps int, stepID string)

// Runner executes plan steps sequentially with failure isolation.
//
// Use [New] to create an instance.
type Runner struct {
	classify         Classifier
	reporter         Reporter
	progressCallback ProgressCallback
}

// New creates a Runner with the given classifier.
//
// A nil classifier falls back to [DefaultClassifier]. No reporter is set by
// default; use [Runner.SetReporter] to attach one.
func New(classify Classifier) *Runner {
	if classify == nil {
		classify = DefaultClassifier
	}
	return &Runner{
		classify: classify,
		reporter: NopReporter{},
	}
}

// SetReporter attaches a live-feedback reporter for running steps.
// Passing nil restores the no-op default.
func (r *Runner) SetReporter(rep Reporter) {
	if rep == nil {
		rep = NopReporter{}
	}
	r.reporter = rep
}

// SetProgressCallback configures an optional callback fired before each step.
func (r *Runner) SetProgressCallback(cb ProgressCallback) {
	r.progressCallback = cb
}

// Run executes a single step and returns its result.
//
// The action runs in a background goroutine while the configured [Reporter]
// observes its completion; the two are joined only on the action finishing,
// so the reporter can never delay, cancel or otherwise affect the action.
// Run never panics the run on action failure: any error or classified
// failure is captured in the returned [Result].
func (r *Runner) Run(ctx context.Context, s step.Step) Result {
	start := time.Now()

	done := make(chan struct{})
	var diagnostics string
	var actionErr error
	go func() {
		defer close(done)
		diagnostics, actionErr = s.Action(ctx)
	}()

	r.reporter.Observe(done, s.ID)
	<-done

	res := Result{
		StepID:   s.ID,
		Message:  diagnostics,
		Duration: time.Since(start),
	}

	switch {
	case actionErr != nil:
		res.Status = StatusFailed
		if diagnostics == "" {
			res.Message = actionErr.Error()
		}
	case r.classify(diagnostics):
		res.Status = StatusSucceeded
	default:
		res.Status = StatusFailed
	}
	return res
}

// RunAll executes every step in the plan, in order, and returns one result
// per step. It never stops early: given a failing step, the failure is
// recorded and the next step still runs.
func (r *Runner) RunAll(ctx context.Context, plan step.Plan) []Result {
	steps := plan.Steps()
	results := make([]Result, 0, len(steps))
	for i, s := range steps {
		if r.progressCallback != nil {
			r.progressCallback(i+1, len(steps), s.ID)
		}
		results = append(results, r.Run(ctx, s))
	}
	return results
}
