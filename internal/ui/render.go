// Package ui renders the plan summary and the end-of-run report.
//
// Rendering is pure string construction so tests can assert on output
// without a terminal; callers decide where the strings go.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/norelnorel3/ubuntu-setup-script/internal/runner"
	"github.com/norelnorel3/ubuntu-setup-script/internal/step"
)

// RenderPlan returns the summary of the resolved plan: every selected step,
// in execution order.
func RenderPlan(plan step.Plan) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Installation plan"))
	b.WriteString("\n")
	if plan.IsEmpty() {
		b.WriteString(dimStyle.Render("  (no steps selected)"))
		b.WriteString("\n")
		return b.String()
	}
	for i, s := range plan.Steps() {
		fmt.Fprintf(&b, "  %s %d. %s\n", planMark, i+1, s.ID)
	}
	return b.String()
}

// RenderStepHeader returns the per-step progress header printed before a
// step begins.
func RenderStepHeader(index, total int, stepID string) string {
	return sectionStyle.Render(fmt.Sprintf("[%d/%d] %s", index, total, stepID))
}

// RenderReport returns the end-of-run report: one line per executed step
// with its status marker and duration, followed by a failure recap when any
// step failed.
func RenderReport(results []runner.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Run complete"))
	b.WriteString("\n")

	failed := 0
	for _, r := range results {
		mark := okStyle.Render(checkMark)
		if !r.Succeeded() {
			mark = failedStyle.Render(crossMark)
			failed++
		}
		fmt.Fprintf(&b, "  %s %-20s %s\n", mark, r.StepID, r.Duration.Round(time.Millisecond))
	}

	if failed > 0 {
		fmt.Fprintf(&b, "%s\n", failedStyle.Render(fmt.Sprintf("%d step(s) failed:", failed)))
		for _, r := range results {
			if r.Succeeded() {
				continue
			}
			msg := strings.TrimSpace(r.Message)
			if msg == "" {
				msg = "(no diagnostics captured)"
			}
			fmt.Fprintf(&b, "  %s: %s\n", r.StepID, dimStyle.Render(firstLine(msg)))
		}
		b.WriteString(dimStyle.Render("Failed steps are safe to retry by re-running the tool."))
		b.WriteString("\n")
	}
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
