// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package target_test

import (
	"testing"

	"github.com/aibor/kernrun/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriple(t *testing.T) {
	for _, arch := range []string{"riscv64", "riscv32", "", "bogus/arch"} {
		t.Run(arch, func(t *testing.T) {
			assert.Equal(t, arch+"imac-unknown-none-elf", target.Triple(arch))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		arch     string
		mode     target.Mode
		layout   target.Layout
		expected target.Target
	}{
		{
			name: "defaults release",
			arch: "riscv64",
			mode: target.Release,
			expected: target.Target{
				Arch:        "riscv64",
				Triple:      "riscv64imac-unknown-none-elf",
				Mode:        target.Release,
				ArtifactDir: "target/riscv64imac-unknown-none-elf/release",
				KernelPath:  "target/riscv64imac-unknown-none-elf/release/riscv",
				BinaryPath:  "target/riscv64imac-unknown-none-elf/release/riscv.bin",
				ImagePath:   "target/riscv64imac-unknown-none-elf/release/img",
			},
		},
		{
			name: "custom layout debug",
			arch: "riscv32",
			mode: target.Debug,
			layout: target.Layout{
				Dir:        "/build",
				KernelName: "kernel",
			},
			expected: target.Target{
				Arch:        "riscv32",
				Triple:      "riscv32imac-unknown-none-elf",
				Mode:        target.Debug,
				ArtifactDir: "/build/riscv32imac-unknown-none-elf/debug",
				KernelPath:  "/build/riscv32imac-unknown-none-elf/debug/kernel",
				BinaryPath:  "/build/riscv32imac-unknown-none-elf/debug/kernel.bin",
				ImagePath:   "/build/riscv32imac-unknown-none-elf/debug/img",
			},
		},
		{
			name: "malformed arch propagates",
			arch: "x",
			mode: target.Release,
			expected: target.Target{
				Arch:        "x",
				Triple:      "ximac-unknown-none-elf",
				Mode:        target.Release,
				ArtifactDir: "target/ximac-unknown-none-elf/release",
				KernelPath:  "target/ximac-unknown-none-elf/release/riscv",
				BinaryPath:  "target/ximac-unknown-none-elf/release/riscv.bin",
				ImagePath:   "target/ximac-unknown-none-elf/release/img",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := target.Resolve(tt.arch, tt.mode, tt.layout)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestMode_UnmarshalText(t *testing.T) {
	tests := []struct {
		input       string
		expected    target.Mode
		expectedErr error
	}{
		{
			input:    "release",
			expected: target.Release,
		},
		{
			input:    "debug",
			expected: target.Debug,
		},
		{
			input:       "fast",
			expectedErr: target.ErrModeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var actual target.Mode

			err := actual.Set(tt.input)
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestMode_MarshalText(t *testing.T) {
	text, err := target.Debug.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "debug", string(text))

	_, err = target.Mode("fast").MarshalText()
	require.ErrorIs(t, err, target.ErrModeInvalid)
}
