// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package image

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// MiB is the size of one mebibyte.
const MiB = 1 << 20

// DefaultSize is the size of the guest disk image.
const DefaultSize = 20 * MiB

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// Ensure makes sure a disk image exists at the given path.
//
// If the file exists, nothing is done and false is returned. Otherwise, a new
// file of exactly size bytes filled with zeros is created and true is returned.
// Errors are returned as [ProvisionError].
func Ensure(path string, size int64) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return false, &ProvisionError{Path: path, Err: ErrIsDirectory}
		}

		slog.Debug("Disk image exists", slog.String("path", path))

		return false, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return false, &ProvisionError{Path: path, Err: err}
	}

	err = create(path, size)
	if err != nil {
		_ = os.Remove(path)
		return false, &ProvisionError{Path: path, Err: err}
	}

	slog.Info("Created disk image",
		slog.String("path", path),
		slog.String("size", humanize.IBytes(uint64(size))),
	)

	return true, nil
}

func create(path string, size int64) error {
	err := os.MkdirAll(filepath.Dir(path), dirMode)
	if err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	_, err = io.CopyN(file, zeroReader{}, size)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("write zeros: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close file: %w", err)
	}

	return nil
}

// zeroReader is an infinite source of zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
