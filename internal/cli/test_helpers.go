package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/norelnorel3/ubuntu-setup-script/internal/config"
	"github.com/norelnorel3/ubuntu-setup-script/internal/runner"
	"github.com/norelnorel3/ubuntu-setup-script/internal/shell"
	"github.com/norelnorel3/ubuntu-setup-script/internal/step"
)

// writeFile writes a test fixture, failing the test on error.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// executionLog records which fake steps ran, in order.
type executionLog struct {
	mu  sync.Mutex
	ran []string
}

func (l *executionLog) record(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ran = append(l.ran, id)
}

// Ran returns the ids of the steps that executed, in execution order.
func (l *executionLog) Ran() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.ran...)
}

// fakeStep produces a step that records its execution and optionally fails.
func fakeStep(id string, log *executionLog, fail bool) step.Step {
	return step.Step{
		ID:     id,
		Prompt: "Install " + id,
		Action: func(ctx context.Context) (string, error) {
			log.record(id)
			if fail {
				return "E: simulated failure", nil
			}
			return "", nil
		},
	}
}

// newTestApp builds an App around a fake registry, scripted input and a
// capture buffer. The runner uses the default classifier and no reporter.
func newTestApp(t *testing.T, input string, steps []step.Step) (*App, *bytes.Buffer) {
	t.Helper()

	reg := step.NewRegistry()
	for _, s := range steps {
		if err := reg.Register(s); err != nil {
			t.Fatalf("failed to register step %q: %v", s.ID, err)
		}
	}

	out := &bytes.Buffer{}
	cfg := config.DefaultConfig()
	cfg.Progress.Enabled = false

	return &App{
		Config:   cfg,
		In:       strings.NewReader(input),
		Out:      out,
		Shell:    &shell.Runner{},
		Registry: reg,
		Runner:   runner.New(nil),
	}, out
}
