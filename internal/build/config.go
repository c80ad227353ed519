// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package build

import (
	"github.com/aibor/kernrun/internal/target"
)

const tcpFeature = "tcp"

// Config is the configuration of a single run. Create it once with
// [NewConfig] and pass it by value.
type Config struct {
	Arch   string
	Mode   target.Mode
	TCP    bool
	Target target.Target
}

// NewConfig creates a [Config] with the derived [target.Target].
func NewConfig(arch string, mode target.Mode, tcp bool, layout target.Layout) Config {
	return Config{
		Arch:   arch,
		Mode:   mode,
		TCP:    tcp,
		Target: target.Resolve(arch, mode, layout),
	}
}

// Flags returns the cargo build flags for the [Config].
func (c Config) Flags() []string {
	flags := []string{"--target", c.Target.Triple}

	if c.Mode == target.Release {
		flags = append(flags, "--release")
	}

	if c.TCP {
		flags = append(flags, "--features", tcpFeature)
	} else {
		flags = append(flags, "--no-default-features")
	}

	return flags
}
