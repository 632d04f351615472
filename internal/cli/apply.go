package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/norelnorel3/ubuntu-setup-script/internal/confirm"
	"github.com/norelnorel3/ubuntu-setup-script/internal/step"
	"github.com/norelnorel3/ubuntu-setup-script/internal/ui"
)

func newApplyCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Interactively select and run provisioning steps",
		Long: `Ask yes/no for every step in the catalog, print the resolved plan,
and execute it after one final confirmation.

All questions are asked before anything runs, and a declined final
confirmation exits without a single side effect. Individual step failures
are recorded and reported at the end; they never stop the remaining steps.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runApply(cmd.Context())
		},
	}
}

func (app *App) runApply(ctx context.Context) error {
	steps := app.Registry.All()
	collector := confirm.NewCollector(app.In, app.Out)

	// Decide: one answer per step, all collected before any execution.
	var sel step.Selection
	if app.Config.AssumeYes {
		sel = step.SelectAll(steps)
	} else {
		var err error
		sel, err = collector.Collect(steps)
		if err != nil {
			fmt.Fprintln(app.Out, "Aborted. No steps were executed.")
			return NewExitError(1)
		}
	}

	// Plan: derived once, frozen. The selection is not consulted again.
	plan, err := step.NewPlan(app.Registry, sel)
	if err != nil {
		return err
	}

	// Gate: the last point before any side effect.
	if app.Config.AssumeYes {
		fmt.Fprintln(app.Out, ui.RenderPlan(plan))
	} else {
		gate := confirm.NewGate(collector, app.Out)
		ok, err := gate.Present(plan)
		if err != nil || !ok {
			fmt.Fprintln(app.Out, "Aborted. No steps were executed.")
			return NewExitError(1)
		}
	}

	// Execute: sequential, failure-isolated. A completed run exits 0 even
	// when steps failed; the report carries the per-step outcomes.
	results := app.Runner.RunAll(ctx, plan)
	fmt.Fprint(app.Out, ui.RenderReport(results))
	return nil
}
