package provision

import (
	"context"
	"fmt"

	"github.com/norelnorel3/ubuntu-setup-script/internal/profile"
	"github.com/norelnorel3/ubuntu-setup-script/internal/shell"
	"github.com/norelnorel3/ubuntu-setup-script/internal/step"
)

// CommandStep builds an ad-hoc step around a single shell command. Used by
// the raw CLI command; catalog steps are assembled by [BuildRegistry].
func CommandStep(id, prompt, command string, sh *shell.Runner) step.Step {
	return step.Step{ID: id, Prompt: prompt, Action: commandAction(sh, command)}
}

// commandAction wraps a shell command as a step action. The command's stderr
// is the action's diagnostic text.
func commandAction(sh *shell.Runner, command string) step.Action {
	return func(ctx context.Context) (string, error) {
		res, err := sh.Run(ctx, command)
		return res.Stderr, err
	}
}

// profileAction wraps a marker-guarded profile append as a step action.
// Skipping an already-present block is a success, not a diagnostic.
func profileAction(prof *profile.Appender, name string, lines []string) step.Action {
	return func(ctx context.Context) (string, error) {
		_, err := prof.EnsureBlock(name, lines)
		if err != nil {
			return fmt.Sprintf("ERROR: %v", err), err
		}
		return "", nil
	}
}

// commandThenProfileAction runs a command and, only if it succeeds, appends
// a profile block. Used by catalog entries that declare both.
func commandThenProfileAction(sh *shell.Runner, command string, prof *profile.Appender, name string, lines []string) step.Action {
	run := commandAction(sh, command)
	appendBlock := profileAction(prof, name, lines)
	return func(ctx context.Context) (string, error) {
		diag, err := run(ctx)
		if err != nil {
			return diag, err
		}
		if _, perr := appendBlock(ctx); perr != nil {
			return diag, perr
		}
		return diag, nil
	}
}
