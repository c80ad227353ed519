// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package build

import (
	"context"
	"log/slog"

	"github.com/aibor/kernrun/internal/sys"
)

// DefaultCargo is the cargo executable used if none is given.
const DefaultCargo = "cargo"

// Cargo runs cargo commands in the current working directory.
type Cargo struct {
	// Executable is the cargo binary. [DefaultCargo] if empty.
	Executable string

	// IO is passed to the cargo process.
	IO sys.IO
}

func (c *Cargo) executable() string {
	if c.Executable == "" {
		return DefaultCargo
	}

	return c.Executable
}

// Build compiles the kernel for the given [Config].
func (c *Cargo) Build(ctx context.Context, cfg Config) error {
	args := append([]string{"build"}, cfg.Flags()...)

	slog.Debug("Run cargo build", slog.Any("args", args))

	err := sys.Exec(ctx, c.IO, c.executable(), args...)
	if err != nil {
		return &Error{Step: "cargo build", Err: err}
	}

	return nil
}

// Clean removes all build artifacts.
func (c *Cargo) Clean(ctx context.Context) error {
	err := sys.Exec(ctx, c.IO, c.executable(), "clean")
	if err != nil {
		return &Error{Step: "cargo clean", Err: err}
	}

	return nil
}

// ExtractBinary strips the ELF kernel of the [Config] into a raw binary using
// the given objcopy executable.
func ExtractBinary(
	ctx context.Context,
	stdio sys.IO,
	objcopy string,
	cfg Config,
) error {
	err := sys.Exec(ctx, stdio, objcopy,
		cfg.Target.KernelPath,
		"--strip-all",
		"-O", "binary",
		cfg.Target.BinaryPath,
	)
	if err != nil {
		return &Error{Step: "objcopy", Err: err}
	}

	return nil
}
