package confirm

import (
	"fmt"
	"io"

	"github.com/norelnorel3/ubuntu-setup-script/internal/step"
	"github.com/norelnorel3/ubuntu-setup-script/internal/ui"
)

// Gate is the summary and final-confirmation stage.
//
// It prints the resolved plan and requires one explicit go-ahead before any
// step executes. The gate precedes all side effects: declining it must
// terminate the process without a single step having run.
type Gate struct {
	collector *Collector
	out       io.Writer
}

// NewGate creates a Gate sharing the collector's input stream for the final
// answer and writing the summary to out.
func NewGate(collector *Collector, out io.Writer) *Gate {
	return &Gate{collector: collector, out: out}
}

// Present prints the plan summary and asks for the final go-ahead.
//
// It returns true only on an explicit yes. An exhausted input stream counts
// as a decline, consistent with "no answer" never meaning "proceed".
func (g *Gate) Present(plan step.Plan) (bool, error) {
	fmt.Fprintln(g.out, ui.RenderPlan(plan))
	if plan.IsEmpty() {
		// Nothing to install; still require the explicit go-ahead so a
		// declined empty run exits non-zero like any other decline.
		return g.collector.Ask("Nothing selected. Finish without installing anything?")
	}
	return g.collector.Ask("Proceed with the installation above?")
}
