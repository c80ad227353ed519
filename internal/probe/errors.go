// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package probe

import "errors"

// ErrProbeFailure is returned if the probe could not reach the target.
var ErrProbeFailure = errors.New("probe failed")

// Error wraps network errors of a probe.
type Error struct {
	Addr string
	Err  error
}

// Error implements the [error] interface.
func (e *Error) Error() string {
	return "probe " + e.Addr + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*Error) Is(other error) bool {
	_, ok := other.(*Error)
	return ok || other == ErrProbeFailure
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *Error) Unwrap() error {
	return e.Err
}
