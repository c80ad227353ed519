// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/aibor/kernrun/internal/build"
	"github.com/aibor/kernrun/internal/kernrun"
	"github.com/aibor/kernrun/internal/qemu"
	"github.com/aibor/kernrun/internal/target"
	"github.com/aibor/kernrun/internal/toolchain"
)

// settings are the user facing parameters. They are layered from defaults,
// config file, environment and command line, in this order.
type settings struct {
	Arch       string
	Mode       target.Mode
	TCP        Toggle
	KernelName string
	TargetDir  FilePath
	QemuBin    string
	CargoBin   string
	RustcBin   string
	Display    string
}

func defaultSettings() settings {
	return settings{
		Arch:       target.DefaultArch,
		Mode:       target.Release,
		KernelName: target.DefaultKernelName,
		TargetDir:  target.DefaultDir,
		CargoBin:   build.DefaultCargo,
		RustcBin:   toolchain.DefaultCompiler,
	}
}

func (s settings) spec(transport qemu.Transport) kernrun.Spec {
	layout := target.Layout{
		Dir:        string(s.TargetDir),
		KernelName: s.KernelName,
	}

	cfg := build.NewConfig(s.Arch, s.Mode, bool(s.TCP), layout)

	spec := kernrun.NewSpec(cfg, transport)
	spec.Cargo = s.CargoBin
	spec.Compiler = s.RustcBin
	spec.Qemu.Executable = s.QemuBin
	spec.Qemu.Display = s.Display

	return spec
}
