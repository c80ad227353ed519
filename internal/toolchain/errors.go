// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain

import (
	"errors"
	"fmt"
)

// ErrToolchainNotFound is returned if a toolchain executable can not be found.
var ErrToolchainNotFound = errors.New("toolchain executable not found")

// NotFoundError is returned by a [Locator] if no candidate for a tool exists.
type NotFoundError struct {
	Tool string
	Root string

	// Err is the reason the root could not be searched, if any.
	Err error
}

// Error implements the [error] interface.
func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s not found in %s", e.Tool, e.Root)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*NotFoundError) Is(other error) bool {
	_, ok := other.(*NotFoundError)
	return ok || other == ErrToolchainNotFound
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}
