// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package target

import (
	"errors"
	"slices"
)

const (
	// Release builds optimized artifacts.
	Release Mode = "release"
	// Debug builds unoptimized artifacts with debug info.
	Debug Mode = "debug"
)

// ErrModeInvalid is returned if a build mode is unknown.
var ErrModeInvalid = errors.New("unknown build mode (use release or debug)")

// Mode is the build mode. It is used for the cargo profile and as directory
// name of the artifacts.
type Mode string

func (m *Mode) isKnown() bool {
	return slices.Contains([]Mode{Release, Debug}, *m)
}

// String implements [fmt.Stringer].
func (m *Mode) String() string {
	return string(*m)
}

// Set implements [flag.Value].
func (m *Mode) Set(s string) error {
	return m.UnmarshalText([]byte(s))
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if !m.isKnown() {
		return nil, ErrModeInvalid
	}

	return []byte(m), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	mode := Mode(text)

	if !mode.isKnown() {
		return ErrModeInvalid
	}

	*m = mode

	return nil
}
