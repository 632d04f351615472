// Package confirm collects the operator's per-step decisions and holds the
// final confirmation gate.
//
// Decision-making is deliberately separated from execution: [Collector]
// asks every question up front and [Gate] demands one final go-ahead, and
// only then does anything run. A partial input failure therefore never
// leaves a half-applied install.
//
// Prompts are line-oriented, of the form "<question> (y/n): ", and re-issued
// until a recognized answer arrives. There is no retry limit and no implicit
// default; the loop blocks until the operator answers. The one exception is
// the input stream closing (EOF), which is surfaced as [ErrInputClosed] so
// piped input can't spin forever.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/norelnorel3/ubuntu-setup-script/internal/step"
)

// ErrInputClosed is returned when the input stream is exhausted before a
// recognized answer was read. Callers treat it as a decline.
var ErrInputClosed = errors.New("input closed before an answer was given")

// Collector asks the operator yes/no for each step, in registry order.
//
// Use [NewCollector] to create one. Collector has no side effects beyond
// blocking on input and writing prompts.
type Collector struct {
	in  *bufio.Reader
	out io.Writer
}

// NewCollector creates a Collector reading answers from in and writing
// prompts to out.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{in: bufio.NewReader(in), out: out}
}

// Collect asks one question per step and returns the resulting selection.
//
// Exactly one entry is recorded per step, in the order given. Collect runs
// to completion for all steps before anything executes; on [ErrInputClosed]
// the partial selection is discarded.
func (c *Collector) Collect(steps []step.Step) (step.Selection, error) {
	sel := make(step.Selection, len(steps))
	for _, s := range steps {
		answer, err := c.Ask(s.Prompt)
		if err != nil {
			return nil, err
		}
		sel[s.ID] = answer
	}
	return sel, nil
}

// Ask presents a single yes/no question and blocks until it is answered.
//
// Unrecognized input re-issues the prompt; there is no attempt limit.
func (c *Collector) Ask(question string) (bool, error) {
	for {
		fmt.Fprintf(c.out, "%s (y/n): ", question)
		line, err := c.in.ReadString('\n')
		answer, ok := normalize(line)
		if ok {
			return answer, nil
		}
		if err != nil {
			return false, ErrInputClosed
		}
	}
}

// normalize maps raw input to a yes/no answer, reporting whether the input
// was recognized.
func normalize(line string) (answer, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
