// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/aibor/kernrun/internal/sys"
)

// ExitCodeNotStarted is the exit code reported if the emulator process could
// not be started at all.
const ExitCodeNotStarted = 126

// ExitCodeFailure is reported if the emulator's exit status is unknown.
const ExitCodeFailure = 1

// terminationGrace is the time the emulator has to exit after it was signaled
// before it is killed.
const terminationGrace = 5 * time.Second

// Command is a single QEMU command that can be run.
type Command struct {
	name string
	args []string
}

// NewCommand creates a new [Command] from the given [CommandSpec].
func NewCommand(spec CommandSpec) (*Command, error) {
	err := spec.Validate()
	if err != nil {
		return nil, err
	}

	args, err := spec.arguments().Build()
	if err != nil {
		return nil, fmt.Errorf("build arguments: %w", err)
	}

	return &Command{
		name: spec.Executable,
		args: args,
	}, nil
}

// Name returns the executable name.
func (c *Command) Name() string {
	return c.name
}

// Args returns the arguments passed to the executable.
func (c *Command) Args() []string {
	return c.args
}

// String returns the command line as it would be typed in a shell.
func (c *Command) String() string {
	return c.name + " " + strings.Join(c.args, " ")
}

// Run the QEMU command with the given context and block until it terminates.
//
// If the context is canceled, the emulator receives SIGTERM. If stdin is not
// a terminal, the emulator runs in its own process group and the signal is
// sent to the whole group. It is killed if it does not exit in time.
//
// Any failure, including a non-zero exit code, is returned as [CommandError]
// carrying the exit code.
func (c *Command) Run(ctx context.Context, stdio sys.IO) error {
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr
	cmd.WaitDelay = terminationGrace

	group := !isTerminal(stdio.Stdin)
	if group {
		cmd.SysProcAttr = newProcessGroupAttr()
	}

	cmd.Cancel = func() error {
		slog.Debug("Terminate emulator",
			slog.Int("pid", cmd.Process.Pid),
			slog.Bool("process_group", group))

		return terminate(cmd.Process.Pid, group)
	}

	err := cmd.Start()
	if err != nil {
		return &CommandError{
			Err:      fmt.Errorf("start: %w", err),
			ExitCode: ExitCodeNotStarted,
		}
	}

	slog.Debug("Emulator started", slog.Int("pid", cmd.Process.Pid))

	err = cmd.Wait()
	if err == nil {
		return nil
	}

	// Wait returns the context error if the emulator was canceled, even if
	// it exited on its own terms. The process state has the actual status.
	exitCode := sys.ProcessExitCode(cmd.ProcessState)

	switch exitCode {
	case 0:
		slog.Debug("Emulator exited cleanly after termination",
			slog.Any("reason", err))

		return nil
	case -1:
		exitCode = ExitCodeFailure
	}

	return &CommandError{
		Err:      err,
		ExitCode: exitCode,
	}
}
