package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlanCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the step catalog without prompting or executing",
		Long: `List every registered step with its id and prompt, in execution order.
Nothing is asked and nothing runs; use this to preview what apply offers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, s := range app.Registry.All() {
				fmt.Fprintf(app.Out, "%2d. %-18s %s\n", i+1, s.ID, s.Prompt)
			}
			return nil
		},
	}
}
