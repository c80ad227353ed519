// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package kernrun

import (
	"context"
	"errors"
	"fmt"

	"github.com/aibor/kernrun/internal/build"
	"github.com/aibor/kernrun/internal/sys"
)

// Inspection is a kind of kernel executable dump.
type Inspection string

// Supported inspections.
const (
	Disassembly Inspection = "asm"
	SymbolTable Inspection = "sym"
	Headers     Inspection = "header"
)

// ErrInspectionInvalid is returned for unknown [Inspection] kinds.
var ErrInspectionInvalid = errors.New("unknown inspection")

func (i Inspection) objdumpFlag() (string, error) {
	switch i {
	case Disassembly:
		return "-d", nil
	case SymbolTable:
		return "-t", nil
	case Headers:
		return "-x", nil
	default:
		return "", ErrInspectionInvalid
	}
}

// Inspect dumps information about the built kernel with the toolchain's
// objdump.
func Inspect(
	ctx context.Context,
	spec *Spec,
	stdio sys.IO,
	inspection Inspection,
) error {
	flag, err := inspection.objdumpFlag()
	if err != nil {
		return err
	}

	paths, err := ResolveToolchain(ctx, spec)
	if err != nil {
		return err
	}

	err = sys.Exec(ctx, stdio, paths.Objdump,
		"--arch-name="+spec.Build.Arch,
		flag,
		spec.Build.Target.KernelPath,
	)
	if err != nil {
		return fmt.Errorf("objdump: %w", err)
	}

	return nil
}

// Setup installs the target and the llvm tools with rustup.
func Setup(ctx context.Context, spec *Spec, stdio sys.IO) error {
	steps := [][]string{
		{"target", "add", spec.Build.Target.Triple},
		{"component", "add", "llvm-tools-preview"},
	}

	for _, args := range steps {
		err := sys.Exec(ctx, stdio, spec.Rustup, args...)
		if err != nil {
			return fmt.Errorf("rustup: %w", err)
		}
	}

	return nil
}

// Clean removes all build artifacts using cargo.
func Clean(ctx context.Context, spec *Spec, stdio sys.IO) error {
	cargo := build.Cargo{Executable: spec.Cargo, IO: stdio}

	return cargo.Clean(ctx)
}
