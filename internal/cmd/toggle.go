// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

const (
	toggleOn  = "on"
	toggleOff = "off"
)

// Toggle is a boolean flag value spelled "on" or "off".
type Toggle bool

func (t *Toggle) String() string {
	if t != nil && *t {
		return toggleOn
	}

	return toggleOff
}

func (t *Toggle) Set(s string) error {
	return t.UnmarshalText([]byte(s))
}

func (t Toggle) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Toggle) UnmarshalText(text []byte) error {
	switch string(text) {
	case toggleOn:
		*t = true
	case toggleOff:
		*t = false
	default:
		return ErrToggleInvalid
	}

	return nil
}
