// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package target

import (
	"path/filepath"
)

const (
	// DefaultArch is the architecture used if none is given.
	DefaultArch = "riscv64"

	// DefaultDir is the build output root as used by cargo.
	DefaultDir = "target"

	// DefaultKernelName is the name of the kernel executable built by cargo.
	DefaultKernelName = "riscv"

	tripleSuffix = "imac-unknown-none-elf"
	imageName    = "img"
	binarySuffix = ".bin"
)

// Triple returns the target triple for the given architecture.
func Triple(arch string) string {
	return arch + tripleSuffix
}

// Layout describes where build artifacts are located. Empty fields are
// replaced by the defaults.
type Layout struct {
	Dir        string
	KernelName string
}

func (l Layout) withDefaults() Layout {
	if l.Dir == "" {
		l.Dir = DefaultDir
	}

	if l.KernelName == "" {
		l.KernelName = DefaultKernelName
	}

	return l
}

// Target is a resolved build target with all artifact paths.
type Target struct {
	Arch   string
	Triple string
	Mode   Mode

	// ArtifactDir is the directory all artifacts for triple and mode are
	// located in.
	ArtifactDir string

	// KernelPath is the ELF kernel executable.
	KernelPath string

	// BinaryPath is the raw kernel binary stripped from the ELF executable.
	BinaryPath string

	// ImagePath is the disk image attached to the guest as block device.
	ImagePath string
}

// Resolve computes the [Target] for the given architecture and mode.
func Resolve(arch string, mode Mode, layout Layout) Target {
	layout = layout.withDefaults()
	triple := Triple(arch)
	dir := filepath.Join(layout.Dir, triple, string(mode))
	kernel := filepath.Join(dir, layout.KernelName)

	return Target{
		Arch:        arch,
		Triple:      triple,
		Mode:        mode,
		ArtifactDir: dir,
		KernelPath:  kernel,
		BinaryPath:  kernel + binarySuffix,
		ImagePath:   filepath.Join(dir, imageName),
	}
}
