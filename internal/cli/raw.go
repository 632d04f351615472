package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/norelnorel3/ubuntu-setup-script/internal/provision"
	"github.com/norelnorel3/ubuntu-setup-script/internal/runner"
	"github.com/norelnorel3/ubuntu-setup-script/internal/ui"
)

func newRawCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "raw <command>",
		Short: "Run an arbitrary shell command through the engine",
		Long: `Run one ad-hoc shell command with the engine's capture, classification
and progress feedback. Useful for testing a catalog entry before adding it.

Example:
  ubuntu-setup raw "apt-get -y install ripgrep"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")
			s := provision.CommandStep("raw", command, command, app.Shell)

			result := app.Runner.Run(cmd.Context(), s)
			fmt.Fprint(app.Out, ui.RenderReport([]runner.Result{result}))
			if !result.Succeeded() {
				return NewExitError(1)
			}
			return nil
		},
	}
}
