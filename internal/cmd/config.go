// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aibor/kernrun/internal/target"
)

// LocalConfigFile is read from the working directory, if present.
const LocalConfigFile = ".kernrun.toml"

type fileConfig struct {
	Arch       string      `toml:"arch"`
	Mode       target.Mode `toml:"mode"`
	TCP        Toggle      `toml:"tcp"`
	KernelName string      `toml:"kernel_name"`
	TargetDir  string      `toml:"target_dir"`
	QemuBin    string      `toml:"qemu_bin"`
	CargoBin   string      `toml:"cargo_bin"`
	RustcBin   string      `toml:"rustc_bin"`
	Display    string      `toml:"display"`
}

// loadConfigFile applies the keys defined in the given TOML file on top of
// the given settings. A missing file is not an error.
func loadConfigFile(fsys fs.FS, path string, s *settings) error {
	var raw fileConfig

	meta, err := toml.DecodeFS(fsys, path, &raw)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return &ConfigFileError{Path: path, Err: err}
	}

	for _, key := range meta.Undecoded() {
		slog.Warn("Unknown config file key",
			slog.String("file", path),
			slog.String("key", key.String()))
	}

	strs := []struct {
		key   string
		value string
		dest  *string
	}{
		{"arch", raw.Arch, &s.Arch},
		{"kernel_name", raw.KernelName, &s.KernelName},
		{"qemu_bin", raw.QemuBin, &s.QemuBin},
		{"cargo_bin", raw.CargoBin, &s.CargoBin},
		{"rustc_bin", raw.RustcBin, &s.RustcBin},
		{"display", raw.Display, &s.Display},
	}

	for _, str := range strs {
		if meta.IsDefined(str.key) {
			*str.dest = strings.TrimSpace(str.value)
		}
	}

	if meta.IsDefined("mode") {
		s.Mode = raw.Mode
	}

	if meta.IsDefined("tcp") {
		s.TCP = raw.TCP
	}

	if meta.IsDefined("target_dir") {
		err := s.TargetDir.Set(strings.TrimSpace(raw.TargetDir))
		if err != nil {
			return &ConfigFileError{
				Path: path,
				Err:  fmt.Errorf("target_dir: %w", err),
			}
		}
	}

	return nil
}
