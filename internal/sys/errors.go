// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyPath is returned if an empty path is given.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrExec is returned if an external command could not be run or did not
	// exit with code 0.
	ErrExec = errors.New("command failed")
)

// ExecError wraps any error that occurred running an external command.
type ExecError struct {
	Name     string
	Err      error
	ExitCode int
	Stderr   string
}

// Error implements the [error] interface.
func (e *ExecError) Error() string {
	msg := e.Name + ": " + e.Err.Error()

	stderr := strings.TrimSpace(e.Stderr)
	if stderr != "" {
		msg += ": " + stderr
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*ExecError) Is(other error) bool {
	_, ok := other.(*ExecError)
	return ok || other == ErrExec
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ExecError) Unwrap() error {
	return e.Err
}
