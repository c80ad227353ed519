// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

const (
	machineTypeVirt  = "virt"
	biosDefault      = "default"
	executablePrefix = "qemu-system-"
)

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path to the qemu-system binary.
	Executable string

	// QEMU machine type to use.
	Machine string

	// Firmware to load. "default" is OpenSBI for RISC-V.
	BIOS string

	// Path to the kernel ELF executable to boot.
	Kernel string

	// Display backend. If empty, QEMU chooses its default, so the GPU output
	// is visible if a graphical backend is available.
	Display string

	// Devices attached to the guest.
	Topology Topology

	// ExtraArgs are appended after all other arguments. They must not collide
	// with the arguments derived from the other fields.
	ExtraArgs []Argument
}

// AddDefaultsFor fills unset fields with the defaults for the given
// architecture.
func (s *CommandSpec) AddDefaultsFor(arch string) {
	if s.Executable == "" {
		s.Executable = executablePrefix + arch
	}

	if s.Machine == "" {
		s.Machine = machineTypeVirt
	}

	if s.BIOS == "" {
		s.BIOS = biosDefault
	}
}

// Validate checks for obvious issues.
func (s *CommandSpec) Validate() error {
	if s.Executable == "" {
		return &ArgumentError{"no emulator executable"}
	}

	if s.Kernel == "" {
		return &ArgumentError{"no kernel"}
	}

	if !s.Topology.Transport.isKnown() {
		return &ArgumentError{
			"unknown transport: " + string(s.Topology.Transport),
		}
	}

	for _, device := range s.Topology.Devices {
		if device.Transport != s.Topology.Transport {
			return &ArgumentError{
				"device " + device.ID + " has diverging transport",
			}
		}
	}

	return nil
}

// arguments compiles the argument list for the QEMU command.
func (s *CommandSpec) arguments() Arguments {
	args := Arguments{}

	if s.Machine != "" {
		args.Add(UniqueArg("machine", s.Machine))
	}

	if s.BIOS != "" {
		args.Add(UniqueArg("bios", s.BIOS))
	}

	args.Add(UniqueArg("kernel", s.Kernel))

	if s.Display != "" {
		args.Add(UniqueArg("display", s.Display))
	}

	args.Add(s.Topology.arguments()...)
	args.Add(s.ExtraArgs...)

	return args
}
