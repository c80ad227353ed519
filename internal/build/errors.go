// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package build

import "errors"

// ErrBuildFailure is returned if any external build step fails.
var ErrBuildFailure = errors.New("build failed")

// Error wraps errors of external build steps.
type Error struct {
	Step string
	Err  error
}

// Error implements the [error] interface.
func (e *Error) Error() string {
	return e.Step + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*Error) Is(other error) bool {
	_, ok := other.(*Error)
	return ok || other == ErrBuildFailure
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *Error) Unwrap() error {
	return e.Err
}
