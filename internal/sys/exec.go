// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// signalExitCodeOffset is added to the signal number of a process terminated
// by a signal, as shells do.
const signalExitCodeOffset = 128

// IO provides input and output streams for external commands.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Exec runs the executable with the given name and arguments and waits for it
// to finish.
//
// It returns an [ExecError] in case the executable is not available or
// returned with a non-zero exit code.
func Exec(ctx context.Context, stdio IO, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr

	err := cmd.Run()
	if err != nil {
		return &ExecError{
			Name:     name,
			Err:      err,
			ExitCode: ExitCode(err),
		}
	}

	return nil
}

// Output runs the executable like [Exec] and returns its stdout with leading
// and trailing white space removed. Stderr is captured and added to the
// [ExecError] in case of failure.
func Output(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", &ExecError{
			Name:     name,
			Err:      err,
			ExitCode: ExitCode(err),
			Stderr:   stderr.String(),
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// ExitCode returns the exit code of a process from the given error as returned
// by [exec.Cmd.Wait].
//
// A nil error is exit code 0. If the process was terminated by a signal, the
// signal number plus 128 is returned. For errors not related to the process
// exit status, -1 is returned.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return -1
	}

	return ProcessExitCode(exitErr.ProcessState)
}

// ProcessExitCode returns the exit code of an exited process like
// [ExitCode] does. It returns -1 if state is nil.
func ProcessExitCode(state *os.ProcessState) int {
	if state == nil {
		return -1
	}

	status, ok := state.Sys().(syscall.WaitStatus)
	if ok && status.Signaled() {
		return signalExitCodeOffset + int(status.Signal())
	}

	return state.ExitCode()
}
