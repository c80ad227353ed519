// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/aibor/kernrun/internal/build"
	"github.com/aibor/kernrun/internal/image"
	"github.com/aibor/kernrun/internal/qemu"
	"github.com/aibor/kernrun/internal/sys"
	"github.com/aibor/kernrun/internal/toolchain"
)

// Exit codes for failures before the emulator ran. Once the emulator ran, its
// exit code is used.
const (
	ExitCodeFailure      = 1
	ExitCodeUsage        = 2
	ExitCodeToolchain    = 3
	ExitCodeBuild        = 4
	ExitCodeProvisioning = 5
)

func newFlags(args []string, fsys fs.FS, stdio sys.IO) (*flags, error) {
	s := defaultSettings()

	err := loadConfigFile(fsys, LocalConfigFile, &s)
	if err != nil {
		return nil, err
	}

	flags := newFlagSet(s, stdio.Stderr)

	err = flags.ParseArgs(MergedArgs(args))
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func handleParseArgsError(err error, output io.Writer) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit with an error.
	if !errors.Is(err, &ParseArgsError{}) {
		fmt.Fprintf(output, "Error [%s]: %v\n", name, err)
	}

	return ExitCodeUsage
}

func handleRunError(err error, output io.Writer) int {
	if err == nil {
		return 0
	}

	fmt.Fprintf(output, "Error [%s]: %v\n", name, err)

	var qemuErr *qemu.CommandError

	switch {
	case errors.As(err, &qemuErr):
		// Exit codes outside of 1-255 are not representable by a process.
		if qemuErr.ExitCode > 0 && qemuErr.ExitCode < 256 {
			return qemuErr.ExitCode
		}
	case errors.Is(err, toolchain.ErrToolchainNotFound):
		return ExitCodeToolchain
	case errors.Is(err, build.ErrBuildFailure):
		return ExitCodeBuild
	case errors.Is(err, image.ErrProvisioningFailure):
		return ExitCodeProvisioning
	}

	return ExitCodeFailure
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, stdio sys.IO) int {
	return run(ctx, args, os.DirFS("."), stdio)
}

func run(ctx context.Context, args []string, fsys fs.FS, stdio sys.IO) int {
	flags, err := newFlags(args, fsys, stdio)
	if err != nil {
		return handleParseArgsError(err, stdio.Stderr)
	}

	setupLogging(stdio.Stderr, flags.debug)

	spec := flags.settings.spec(flags.command.transport)

	slog.Debug("Run",
		slog.String("command", flags.command.name),
		slog.String("triple", spec.Build.Target.Triple),
		slog.String("mode", spec.Build.Mode.String()))

	err = flags.command.run(ctx, &spec, stdio)

	return handleRunError(err, stdio.Stderr)
}
