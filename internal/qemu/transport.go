// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"slices"
)

const (
	// TransportLegacy allows the guest to negotiate the legacy virtio-mmio
	// interface (version 1).
	TransportLegacy Transport = "legacy"

	// TransportModern forces the modern virtio-mmio interface (version 2) for
	// all devices.
	TransportModern Transport = "modern"
)

// Transport is the virtio bus interface generation used by all devices.
type Transport string

func (t *Transport) isKnown() bool {
	return slices.Contains([]Transport{TransportLegacy, TransportModern}, *t)
}

// String implements [fmt.Stringer].
func (t *Transport) String() string {
	if !t.isKnown() {
		return ""
	}

	return string(*t)
}

// Set implements [flag.Value].
func (t *Transport) Set(s string) error {
	return t.UnmarshalText([]byte(s))
}

// MarshalText implements [encoding.TextMarshaler].
func (t Transport) MarshalText() ([]byte, error) {
	s := t.String()
	if s == "" {
		return nil, ErrTransportInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Transport) UnmarshalText(text []byte) error {
	transport := Transport(text)

	if !transport.isKnown() {
		return ErrTransportInvalid
	}

	*t = transport

	return nil
}

// busArguments returns the bus-wide arguments required for the transport.
func (t Transport) busArguments() []Argument {
	if t != TransportModern {
		return nil
	}

	return []Argument{
		RepeatableArg("global", "virtio-mmio.force-legacy=false"),
	}
}
