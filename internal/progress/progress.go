// Package progress renders a cosmetic progress bar for a running step.
//
// Installer actions report no granular progress signal, so the percentage
// shown is a heartbeat, not a measurement: it advances on a ticker, holds
// just short of full while the action is alive, and completes to 100%
// exactly once when the action is observed to have finished. The bar is
// redrawn in place with a carriage return and finished with a newline.
//
// The bar has zero effect on correctness. It only polls a done channel and
// writes to its own writer; it never touches the action's execution, output
// or exit status, and a completed bar is not evidence that the step
// succeeded.
package progress

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	barFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9fafb"))
)

// Bar renders a bounded-width, ticker-driven progress bar.
//
// Use [NewBar] to create one with defaults. Bar implements the runner's
// Reporter interface.
type Bar struct {
	out      io.Writer
	width    int
	interval time.Duration
}

// NewBar creates a Bar writing to out.
//
// width is the number of bar cells; interval is the heartbeat cadence.
// Non-positive values fall back to 30 cells and 200ms.
func NewBar(out io.Writer, width int, interval time.Duration) *Bar {
	if width <= 0 {
		width = 30
	}
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &Bar{out: out, width: width, interval: interval}
}

// Observe renders the bar until done is closed, then draws the single 100%
// line and a trailing newline.
func (b *Bar) Observe(done <-chan struct{}, label string) {
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	percent := 0
	b.draw(label, percent)
	for {
		select {
		case <-done:
			b.draw(label, 100)
			fmt.Fprintln(b.out)
			return
		case <-ticker.C:
			// Hold at 99 until the action actually exits.
			if percent < 99 {
				percent += 2
				if percent > 99 {
					percent = 99
				}
			}
			b.draw(label, percent)
		}
	}
}

func (b *Bar) draw(label string, percent int) {
	filled := b.width * percent / 100
	bar := barFullStyle.Render(strings.Repeat("#", filled)) +
		barEmptyStyle.Render(strings.Repeat("-", b.width-filled))
	fmt.Fprintf(b.out, "\r%s [%s] %3d%%", labelStyle.Render(label), bar, percent)
}
