package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBar_Observe_CompletesOnceWhenDone(t *testing.T) {
	out := &bytes.Buffer{}
	b := NewBar(out, 10, time.Millisecond)

	done := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(done)
	}()
	b.Observe(done, "docker")

	rendered := out.String()
	assert.Equal(t, 1, strings.Count(rendered, "100%"))
	assert.True(t, strings.HasSuffix(rendered, "\n"))
	// Redraws happen in place via carriage returns.
	assert.Greater(t, strings.Count(rendered, "\r"), 1)
	assert.Contains(t, rendered, "docker")
}

func TestBar_Observe_AlreadyDone(t *testing.T) {
	out := &bytes.Buffer{}
	b := NewBar(out, 10, time.Millisecond)

	done := make(chan struct{})
	close(done)
	b.Observe(done, "zsh")

	assert.Equal(t, 1, strings.Count(out.String(), "100%"))
}

func TestBar_Observe_HoldsShortOfFullWhileRunning(t *testing.T) {
	out := &bytes.Buffer{}
	b := NewBar(out, 10, time.Millisecond)

	done := make(chan struct{})
	go func() {
		// Long enough for the heartbeat to hit its cap.
		time.Sleep(120 * time.Millisecond)
		close(done)
	}()
	b.Observe(done, "helm")

	rendered := out.String()
	assert.Contains(t, rendered, " 99%")
	// 100% appears only once, at completion.
	assert.Equal(t, 1, strings.Count(rendered, "100%"))
}

func TestNewBar_Defaults(t *testing.T) {
	b := NewBar(&bytes.Buffer{}, 0, 0)

	assert.Equal(t, 30, b.width)
	assert.Equal(t, 200*time.Millisecond, b.interval)
}
