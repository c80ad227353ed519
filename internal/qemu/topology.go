// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
)

// ForwardPort is the TCP port forwarded from the host to the same port in the
// guest.
const ForwardPort = 5555

// Topology is the ordered device graph of the guest.
type Topology struct {
	Transport Transport
	Devices   []Device

	// HostPort is forwarded to GuestPort by the user-mode network backend.
	HostPort  int
	GuestPort int
}

// NewTopology returns the guest device topology for the given disk image and
// transport.
//
// It always consists of block, console, gpu, net and keyboard devices in this
// order. A mouse device is present as well, but disabled. All devices use the
// same transport.
func NewTopology(imagePath string, transport Transport) Topology {
	hostForward := fmt.Sprintf("hostfwd=tcp::%d-:%d", ForwardPort, ForwardPort)

	devices := []Device{
		{
			Kind:    DeviceBlock,
			ID:      "x0",
			Backend: imagePath,
			Enabled: true,
		},
		{
			Kind:    DeviceConsole,
			ID:      "serial0",
			Backend: "stdio",
			Enabled: true,
		},
		{
			Kind:    DeviceGPU,
			ID:      "gpu0",
			Enabled: true,
		},
		{
			Kind:           DeviceNet,
			ID:             "net0",
			Backend:        "user",
			BackendOptions: []string{hostForward},
			Enabled:        true,
		},
		{
			Kind:    DeviceKeyboard,
			ID:      "keyboard0",
			Enabled: true,
		},
		{
			Kind: DeviceMouse,
			ID:   "mouse0",
		},
	}

	for idx := range devices {
		devices[idx].Transport = transport
	}

	return Topology{
		Transport: transport,
		Devices:   devices,
		HostPort:  ForwardPort,
		GuestPort: ForwardPort,
	}
}

// Enabled returns the devices that are attached to the guest.
func (t Topology) Enabled() []Device {
	enabled := make([]Device, 0, len(t.Devices))

	for _, device := range t.Devices {
		if device.Enabled {
			enabled = append(enabled, device)
		}
	}

	return enabled
}

// Device returns the first device of the given kind.
func (t Topology) Device(kind DeviceKind) (Device, bool) {
	for _, device := range t.Devices {
		if device.Kind == kind {
			return device, true
		}
	}

	return Device{}, false
}

// arguments returns the QEMU arguments for all enabled devices.
func (t Topology) arguments() []Argument {
	args := t.Transport.busArguments()

	for _, device := range t.Enabled() {
		args = append(args, device.arguments()...)
	}

	return args
}
