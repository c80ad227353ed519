// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
)

const (
	name = "kernrun"

	usageMessage = `Usage of 'kernrun':
    kernrun [flags...] command

Build the kernel and boot it in QEMU:
	kernrun run

Build a debug kernel with TCP support and boot it with legacy devices:
	kernrun -mode=debug -tcp=on run-legacy

All kernrun flags can also be provided via environment variable KERNRUN_ARGS:
	KERNRUN_ARGS="-debug -display=none" kernrun run

Defaults may be set in the file ./.kernrun.toml:
	mode = "debug"
	tcp = "on"
`
)

type flags struct {
	settings settings
	command  command
	flagSet  *flag.FlagSet

	version bool
	debug   bool
}

func newFlagSet(s settings, output io.Writer) *flags {
	flags := &flags{
		settings: s,
	}

	flags.initFlagset(output)

	return flags
}

func (f *flags) ParseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	positionalArgs := f.flagSet.Args()

	switch len(positionalArgs) {
	case 0:
		return f.fail("command", ErrCommandMissing)
	case 1:
	default:
		return f.fail("command", ErrTooManyCommands)
	}

	cmd, found := lookupCommand(positionalArgs[0])
	if !found {
		return f.fail(positionalArgs[0], ErrCommandUnknown)
	}

	f.command = cmd

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.StringVar(
		&f.settings.Arch,
		"arch",
		f.settings.Arch,
		"target architecture, the rust target triple is <arch>imac-unknown-none-elf",
	)

	flagSet.Var(
		&f.settings.Mode,
		"mode",
		"build mode: release, debug",
	)

	flagSet.Var(
		&f.settings.TCP,
		"tcp",
		"guest TCP support: on, off",
	)

	flagSet.StringVar(
		&f.settings.KernelName,
		"kernelName",
		f.settings.KernelName,
		"name of the kernel executable built by cargo",
	)

	flagSet.Var(
		&f.settings.TargetDir,
		"targetDir",
		"cargo target directory all artifacts are located in",
	)

	flagSet.StringVar(
		&f.settings.QemuBin,
		"qemuBin",
		f.settings.QemuBin,
		"QEMU binary to use (default depends on arch: qemu-system-*)",
	)

	flagSet.StringVar(
		&f.settings.CargoBin,
		"cargoBin",
		f.settings.CargoBin,
		"cargo binary to use",
	)

	flagSet.StringVar(
		&f.settings.RustcBin,
		"rustcBin",
		f.settings.RustcBin,
		"rustc binary used to find the toolchain sysroot",
	)

	flagSet.StringVar(
		&f.settings.Display,
		"display",
		f.settings.Display,
		"QEMU display backend (default is QEMU's default)",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nCommands:")

	for _, cmd := range commands {
		fmt.Fprintf(f.flagSet.Output(), "  %-12s %s\n", cmd.name, cmd.description)
	}

	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
