// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package kernrun

import (
	"github.com/aibor/kernrun/internal/build"
	"github.com/aibor/kernrun/internal/image"
	"github.com/aibor/kernrun/internal/probe"
	"github.com/aibor/kernrun/internal/qemu"
	"github.com/aibor/kernrun/internal/toolchain"
)

// DefaultRustup is the rustup executable used if none is given.
const DefaultRustup = "rustup"

// Spec describes a single run. It is created once and not modified afterwards.
type Spec struct {
	Build build.Config

	// Transport used for all guest devices.
	Transport qemu.Transport

	// Cargo executable. Defaults to [build.DefaultCargo].
	Cargo string

	// Compiler queried for the toolchain sysroot. Defaults to
	// [toolchain.DefaultCompiler].
	Compiler string

	// Rustup executable used for environment setup. Defaults to
	// [DefaultRustup].
	Rustup string

	// Locator finds the toolchain executables. If nil, the sysroot of the
	// Compiler is searched.
	Locator toolchain.Locator

	Qemu Qemu

	// Probe of the guest network. Its port is always the forwarded host port
	// of the device topology.
	Probe probe.Spec

	// ImageSize of the disk image, if it needs to be created.
	ImageSize int64
}

// Qemu are the emulator parameters not derived from the build.
type Qemu struct {
	// Executable defaults to qemu-system-<arch>.
	Executable string

	// Display backend, QEMU default if empty.
	Display string
}

// NewSpec returns a [Spec] for the given build configuration with defaults
// for everything else.
func NewSpec(cfg build.Config, transport qemu.Transport) Spec {
	return Spec{
		Build:     cfg,
		Transport: transport,
		Cargo:     build.DefaultCargo,
		Compiler:  toolchain.DefaultCompiler,
		Rustup:    DefaultRustup,
		Probe:     probe.DefaultSpec(),
		ImageSize: image.DefaultSize,
	}
}
