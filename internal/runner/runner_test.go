package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norelnorel3/ubuntu-setup-script/internal/step"
)

func succeedingStep(id string) step.Step {
	return step.Step{ID: id, Prompt: id, Action: func(ctx context.Context) (string, error) {
		return "", nil
	}}
}

func failingStep(id string) step.Step {
	return step.Step{ID: id, Prompt: id, Action: func(ctx context.Context) (string, error) {
		return "E: Unable to locate package nosuch", errors.New("exit status 100")
	}}
}

func planOf(t *testing.T, steps ...step.Step) step.Plan {
	t.Helper()
	reg := step.NewRegistry()
	for _, s := range steps {
		require.NoError(t, reg.Register(s))
	}
	plan, err := step.NewPlan(reg, step.SelectAll(steps))
	require.NoError(t, err)
	return plan
}

func TestRunner_Run_Success(t *testing.T) {
	r := New(nil)

	res := r.Run(context.Background(), succeedingStep("zsh"))

	assert.Equal(t, "zsh", res.StepID)
	assert.Equal(t, StatusSucceeded, res.Status)
	assert.True(t, res.Succeeded())
}

func TestRunner_Run_ActionError(t *testing.T) {
	r := New(nil)

	res := r.Run(context.Background(), failingStep("docker"))

	assert.Equal(t, StatusFailed, res.Status)
	assert.False(t, res.Succeeded())
	assert.Contains(t, res.Message, "E: Unable to locate")
}

func TestRunner_Run_ErrorWithoutDiagnostics(t *testing.T) {
	r := New(nil)
	s := step.Step{ID: "broken", Prompt: "broken", Action: func(ctx context.Context) (string, error) {
		return "", errors.New("command not found")
	}}

	res := r.Run(context.Background(), s)

	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.Message, "not found")
}

func TestRunner_Run_ClassifierFlipsNoisyDiagnostics(t *testing.T) {
	// Non-zero diagnostics with no error signature stay successful.
	s := step.Step{ID: "noisy", Prompt: "noisy", Action: func(ctx context.Context) (string, error) {
		return "W: some apt warning\ndebconf: unable to initialize frontend", nil
	}}

	res := New(DefaultClassifier).Run(context.Background(), s)

	assert.Equal(t, StatusSucceeded, res.Status)
}

func TestRunner_Run_CustomClassifier(t *testing.T) {
	strict := func(diagnostics string) bool { return diagnostics == "" }
	s := step.Step{ID: "s", Prompt: "s", Action: func(ctx context.Context) (string, error) {
		return "anything at all", nil
	}}

	res := New(strict).Run(context.Background(), s)

	assert.Equal(t, StatusFailed, res.Status)
}

func TestRunner_RunAll_NeverStopsOnFailure(t *testing.T) {
	r := New(nil)
	plan := planOf(t, failingStep("a"), succeedingStep("b"), failingStep("c"))

	results := r.RunAll(context.Background(), plan)

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].StepID)
	assert.Equal(t, "b", results[1].StepID)
	assert.Equal(t, "c", results[2].StepID)
	assert.Equal(t, StatusFailed, results[0].Status)
	assert.Equal(t, StatusSucceeded, results[1].Status)
	assert.Equal(t, StatusFailed, results[2].Status)
}

func TestRunner_RunAll_ProgressCallback(t *testing.T) {
	r := New(nil)
	var calls []string
	r.SetProgressCallback(func(index, total int, stepID string) {
		calls = append(calls, stepID)
		assert.Equal(t, 2, total)
	})
	plan := planOf(t, succeedingStep("a"), succeedingStep("b"))

	r.RunAll(context.Background(), plan)

	assert.Equal(t, []string{"a", "b"}, calls)
}

// recordingReporter tracks whether it observed the done channel close.
type recordingReporter struct {
	completed bool
}

func (r *recordingReporter) Observe(done <-chan struct{}, label string) {
	<-done
	r.completed = true
}

func TestRunner_ReporterCompletesEvenWhenStepFails(t *testing.T) {
	// A completed reporter cycle is not evidence of step success.
	r := New(nil)
	rep := &recordingReporter{}
	r.SetReporter(rep)

	res := r.Run(context.Background(), failingStep("docker"))

	assert.True(t, rep.completed)
	assert.Equal(t, StatusFailed, res.Status)
}

// earlyReturnReporter returns without waiting for the action.
type earlyReturnReporter struct{}

func (earlyReturnReporter) Observe(done <-chan struct{}, label string) {}

func TestRunner_ReporterReturningEarlyDoesNotAffectAction(t *testing.T) {
	r := New(nil)
	r.SetReporter(earlyReturnReporter{})
	ran := false
	s := step.Step{ID: "slow", Prompt: "slow", Action: func(ctx context.Context) (string, error) {
		time.Sleep(20 * time.Millisecond)
		ran = true
		return "", nil
	}}

	res := r.Run(context.Background(), s)

	// The runner joined on the action, not the reporter.
	assert.True(t, ran)
	assert.Equal(t, StatusSucceeded, res.Status)
	assert.GreaterOrEqual(t, res.Duration, 20*time.Millisecond)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusRunning.IsTerminal())
	assert.True(t, StatusSucceeded.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
}
