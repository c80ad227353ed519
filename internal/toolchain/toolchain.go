// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain

import (
	"context"
	"fmt"

	"github.com/aibor/kernrun/internal/sys"
)

// Names of the required toolchain executables as shipped with the
// llvm-tools rustup component.
const (
	ObjdumpName = "llvm-objdump"
	ObjcopyName = "llvm-objcopy"
)

// DefaultCompiler is the compiler executable queried for the sysroot.
const DefaultCompiler = "rustc"

// Paths are the resolved toolchain locations.
type Paths struct {
	Sysroot string
	Objdump string
	Objcopy string
}

// Sysroot returns the installation root reported by the given compiler.
func Sysroot(ctx context.Context, compiler string) (string, error) {
	sysroot, err := sys.Output(ctx, compiler, "--print", "sysroot")
	if err != nil {
		return "", fmt.Errorf("query sysroot: %w", err)
	}

	return sysroot, nil
}

// Resolve looks up all required tools using the given [Locator].
//
// It fails with [ErrToolchainNotFound] if any of the tools is missing.
func Resolve(sysroot string, locator Locator) (Paths, error) {
	objdump, err := locator.Find(ObjdumpName)
	if err != nil {
		return Paths{}, fmt.Errorf("disassembler: %w", err)
	}

	objcopy, err := locator.Find(ObjcopyName)
	if err != nil {
		return Paths{}, fmt.Errorf("symbol copy: %w", err)
	}

	return Paths{
		Sysroot: sysroot,
		Objdump: objdump,
		Objcopy: objcopy,
	}, nil
}

// Discover queries the compiler for its sysroot and resolves all tools in it.
func Discover(ctx context.Context, compiler string) (Paths, error) {
	sysroot, err := Sysroot(ctx, compiler)
	if err != nil {
		return Paths{}, err
	}

	return Resolve(sysroot, NewSysrootLocator(sysroot))
}
