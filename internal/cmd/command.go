// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"

	"github.com/aibor/kernrun/internal/kernrun"
	"github.com/aibor/kernrun/internal/qemu"
	"github.com/aibor/kernrun/internal/sys"
)

type runFunc func(ctx context.Context, spec *kernrun.Spec, stdio sys.IO) error

type command struct {
	name        string
	description string
	transport   qemu.Transport
	run         runFunc
}

var commands = []command{
	{
		name:        "build",
		description: "build the kernel and its raw binary",
		run:         kernrun.Build,
	},
	{
		name:        "qemu-legacy",
		description: "launch the built kernel with legacy virtio transport",
		transport:   qemu.TransportLegacy,
		run:         kernrun.Launch,
	},
	{
		name:        "qemu",
		description: "launch the built kernel with modern virtio transport",
		transport:   qemu.TransportModern,
		run:         kernrun.Launch,
	},
	{
		name:        "run-legacy",
		description: "build and launch with legacy virtio transport",
		transport:   qemu.TransportLegacy,
		run:         kernrun.BuildAndLaunch,
	},
	{
		name:        "run",
		description: "build and launch with modern virtio transport",
		transport:   qemu.TransportModern,
		run:         kernrun.BuildAndLaunch,
	},
	{
		name:        "env",
		description: "install the rust target and llvm tools",
		run:         kernrun.Setup,
	},
	{
		name:        "asm",
		description: "disassemble the kernel",
		run:         inspect(kernrun.Disassembly),
	},
	{
		name:        "sym",
		description: "print the kernel symbol table",
		run:         inspect(kernrun.SymbolTable),
	},
	{
		name:        "header",
		description: "print the kernel headers",
		run:         inspect(kernrun.Headers),
	},
	{
		name:        "clean",
		description: "remove all build artifacts",
		run:         kernrun.Clean,
	},
}

func inspect(inspection kernrun.Inspection) runFunc {
	return func(ctx context.Context, spec *kernrun.Spec, stdio sys.IO) error {
		return kernrun.Inspect(ctx, spec, stdio, inspection)
	}
}

func lookupCommand(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}

	return command{}, false
}
