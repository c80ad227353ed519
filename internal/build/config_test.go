// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package build_test

import (
	"testing"

	"github.com/aibor/kernrun/internal/build"
	"github.com/aibor/kernrun/internal/target"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Flags(t *testing.T) {
	tests := []struct {
		name     string
		mode     target.Mode
		tcp      bool
		expected []string
	}{
		{
			name: "release without tcp",
			mode: target.Release,
			expected: []string{
				"--target", "riscv64imac-unknown-none-elf",
				"--release",
				"--no-default-features",
			},
		},
		{
			name: "release with tcp",
			mode: target.Release,
			tcp:  true,
			expected: []string{
				"--target", "riscv64imac-unknown-none-elf",
				"--release",
				"--features", "tcp",
			},
		},
		{
			name: "debug without tcp",
			mode: target.Debug,
			expected: []string{
				"--target", "riscv64imac-unknown-none-elf",
				"--no-default-features",
			},
		},
		{
			name: "debug with tcp",
			mode: target.Debug,
			tcp:  true,
			expected: []string{
				"--target", "riscv64imac-unknown-none-elf",
				"--features", "tcp",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := build.NewConfig("riscv64", tt.mode, tt.tcp, target.Layout{})
			assert.Equal(t, tt.expected, cfg.Flags())
		})
	}
}

func TestConfig_FlagsFeatureExclusivity(t *testing.T) {
	for _, mode := range []target.Mode{target.Release, target.Debug} {
		t.Run(string(mode), func(t *testing.T) {
			off := build.NewConfig("riscv64", mode, false, target.Layout{}).Flags()
			assert.Contains(t, off, "--no-default-features")
			assert.NotContains(t, off, "tcp")
			assert.NotContains(t, off, "--features")

			on := build.NewConfig("riscv64", mode, true, target.Layout{}).Flags()
			assert.Contains(t, on, "tcp")
			assert.NotContains(t, on, "--no-default-features")
		})
	}
}

func TestNewConfig(t *testing.T) {
	cfg := build.NewConfig("riscv64", target.Release, false, target.Layout{})

	assert.Equal(t, "riscv64imac-unknown-none-elf", cfg.Target.Triple)
	assert.Equal(t,
		"target/riscv64imac-unknown-none-elf/release/riscv",
		cfg.Target.KernelPath,
	)
}
