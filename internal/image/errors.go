// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package image

import "errors"

// ErrProvisioningFailure is returned if the image can not be created.
var ErrProvisioningFailure = errors.New("image provisioning failed")

// ErrIsDirectory is the cause of a [ProvisionError] if a directory exists at
// the image path.
var ErrIsDirectory = errors.New("is a directory")

// ProvisionError wraps file system errors that occurred creating an image.
type ProvisionError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *ProvisionError) Error() string {
	return "provision " + e.Path + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*ProvisionError) Is(other error) bool {
	_, ok := other.(*ProvisionError)
	return ok || other == ErrProvisioningFailure
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ProvisionError) Unwrap() error {
	return e.Err
}
