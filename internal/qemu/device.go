// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

// DeviceKind is the kind of an emulated device.
type DeviceKind string

// Supported device kinds.
const (
	DeviceBlock    DeviceKind = "block"
	DeviceConsole  DeviceKind = "console"
	DeviceGPU      DeviceKind = "gpu"
	DeviceNet      DeviceKind = "net"
	DeviceKeyboard DeviceKind = "keyboard"
	DeviceMouse    DeviceKind = "mouse"
)

// Device describes a single emulated device of the guest.
type Device struct {
	Kind DeviceKind

	// ID identifies the device and its backend in the QEMU command line.
	ID string

	// Backend is the resource backing the device, like the disk image path
	// for block devices. Empty for devices without backend.
	Backend string

	// BackendOptions are additional settings for the backend.
	BackendOptions []string

	// Transport is the virtio transport generation of the device. It is not
	// part of the device's own arguments, as QEMU sets it for all virtio-mmio
	// devices at once (see [Transport]). [CommandSpec.Validate] rejects
	// devices whose transport diverges from the one of the topology.
	Transport Transport

	// Enabled devices are attached to the guest. Disabled ones are kept
	// in the topology but not added to the command line.
	Enabled bool
}

// arguments returns the QEMU arguments attaching the device.
func (d Device) arguments() []Argument {
	switch d.Kind {
	case DeviceBlock:
		return []Argument{
			RepeatableArg("drive",
				"file="+d.Backend, "if=none", "format=raw", "id="+d.ID),
			RepeatableArg("device", "virtio-blk-device", "drive="+d.ID),
		}
	case DeviceConsole:
		return []Argument{
			RepeatableArg("serial", "mon:"+d.Backend),
		}
	case DeviceGPU:
		return []Argument{
			RepeatableArg("device", "virtio-gpu-device", "id="+d.ID),
		}
	case DeviceNet:
		netdev := append([]string{d.Backend, "id=" + d.ID}, d.BackendOptions...)

		return []Argument{
			RepeatableArg("netdev", netdev...),
			RepeatableArg("device", "virtio-net-device", "netdev="+d.ID),
		}
	case DeviceKeyboard:
		return []Argument{
			RepeatableArg("device", "virtio-keyboard-device", "id="+d.ID),
		}
	case DeviceMouse:
		return []Argument{
			RepeatableArg("device", "virtio-mouse-device", "id="+d.ID),
		}
	default: // Ignore unknown device kinds.
		return nil
	}
}
