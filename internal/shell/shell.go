// Package shell executes provisioning commands through the system shell.
//
// Every step action in the built-in catalog is ultimately a shell command
// (apt-get, curl, git, ...). The engine treats them as opaque: a command may
// write diagnostics to stderr and exits with a code. [Runner.Run] captures
// both without interpreting either; classification belongs to the caller.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Result holds the captured output of a shell command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes commands via `bash -c`.
//
// The zero value runs commands in the current working directory. Set Dir to
// override, and Env to append extra environment variables (the process
// environment is always inherited, since package managers need PATH, proxy
// settings and DEBIAN_FRONTEND from the caller).
type Runner struct {
	Dir string
	Env []string
}

// Run executes the command and captures its output.
//
// The returned error is non-nil when the command could not be started or
// exited non-zero; in the non-zero case the Result still carries the full
// captured output and exit code. Cancelling ctx kills the command.
func (r *Runner) Run(ctx context.Context, command string) (Result, error) {
	cmd := exec.CommandContext(ctx, "bash", "-c", command)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
			return res, fmt.Errorf("exit status %d", res.ExitCode)
		}
		res.ExitCode = 1
		return res, err
	}
	return res, nil
}
