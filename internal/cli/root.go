// Package cli wires the provisioning engine into Cobra commands.
//
// Commands:
//   - apply: the full interactive flow (collect, gate, execute, report)
//   - plan:  print the step catalog without prompting or executing
//   - raw:   run one arbitrary shell command through the engine
//
// The [App] struct carries every dependency a command needs; commands never
// reach for globals, so tests construct an App around buffers and mocks.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/norelnorel3/ubuntu-setup-script/internal/catalog"
	"github.com/norelnorel3/ubuntu-setup-script/internal/config"
	"github.com/norelnorel3/ubuntu-setup-script/internal/profile"
	"github.com/norelnorel3/ubuntu-setup-script/internal/progress"
	"github.com/norelnorel3/ubuntu-setup-script/internal/provision"
	"github.com/norelnorel3/ubuntu-setup-script/internal/runner"
	"github.com/norelnorel3/ubuntu-setup-script/internal/shell"
	"github.com/norelnorel3/ubuntu-setup-script/internal/step"
	"github.com/norelnorel3/ubuntu-setup-script/internal/ui"
)

// App holds the dependencies shared by all commands.
type App struct {
	Config   *config.Config
	In       io.Reader
	Out      io.Writer
	Shell    *shell.Runner
	Registry *step.Registry
	Runner   *runner.Runner
}

// NewApp builds a fully wired App from configuration.
//
// It loads the operator's extra-step catalog, assembles the registry, and
// configures the runner with the default classifier, a progress bar (when
// enabled) and a per-step header callback.
func NewApp(cfg *config.Config, in io.Reader, out io.Writer) (*App, error) {
	sh := &shell.Runner{Env: []string{"DEBIAN_FRONTEND=noninteractive"}}
	prof := profile.NewAppender(cfg.ProfilePath)

	extra, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	reg, err := provision.BuildRegistry(cfg, sh, prof, extra)
	if err != nil {
		return nil, err
	}

	run := runner.New(runner.DefaultClassifier)
	if cfg.Progress.Enabled {
		interval := time.Duration(cfg.Progress.IntervalMS) * time.Millisecond
		run.SetReporter(progress.NewBar(out, cfg.Progress.Width, interval))
	}
	run.SetProgressCallback(func(index, total int, stepID string) {
		fmt.Fprintln(out, ui.RenderStepHeader(index, total, stepID))
	})

	return &App{
		Config:   cfg,
		In:       in,
		Out:      out,
		Shell:    sh,
		Registry: reg,
		Runner:   run,
	}, nil
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ubuntu-setup",
		Short:         "Provision an Ubuntu 22.04 developer machine",
		Long:          "ubuntu-setup installs OS packages, a shell framework and developer CLIs\nthrough an interactive, re-run-safe sequence of confirmed steps.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&app.Config.AssumeYes, "yes", "y", app.Config.AssumeYes,
		"select every step and skip the final confirmation")
	root.AddCommand(
		newApplyCommand(app),
		newPlanCommand(app),
		newRawCommand(app),
	)
	return root
}

// ExecuteResult carries the outcome of a CLI invocation for callers that
// must not os.Exit, i.e. tests.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// RunWithConfig executes the CLI against an explicit config, argument list
// and IO streams, returning the exit code instead of terminating.
func RunWithConfig(ctx context.Context, cfg *config.Config, args []string, in io.Reader, out io.Writer) ExecuteResult {
	app, err := NewApp(cfg, in, out)
	if err != nil {
		return ExecuteResult{ExitCode: 1, Err: err}
	}

	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	if err := root.ExecuteContext(ctx); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{ExitCode: 0}
}

// Execute is the production entry point: load config, run, map the result
// to a process exit code.
func Execute() int {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	res := RunWithConfig(context.Background(), cfg, os.Args[1:], os.Stdin, os.Stdout)
	if res.Err != nil {
		if _, ok := IsExitError(res.Err); !ok {
			fmt.Fprintf(os.Stderr, "Error: %v\n", res.Err)
		}
	}
	return res.ExitCode
}
