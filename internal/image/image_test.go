// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package image_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/kernrun/internal/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsure_Create(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riscv64imac-unknown-none-elf", "release", "img")

	created, err := image.Ensure(path, image.DefaultSize)
	require.NoError(t, err)
	assert.True(t, created)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Len(t, content, 20*1024*1024)
	assert.True(t, bytes.Equal(make([]byte, len(content)), content),
		"image should be zero filled")
}

func TestEnsure_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img")

	created, err := image.Ensure(path, image.DefaultSize)
	require.NoError(t, err)
	require.True(t, created)

	// Mark the image so a second write would be detected.
	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = file.WriteAt([]byte("guest data"), 0)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	statBefore, err := os.Stat(path)
	require.NoError(t, err)

	created, err = image.Ensure(path, image.DefaultSize)
	require.NoError(t, err)
	assert.False(t, created)

	statAfter, err := os.Stat(path)
	require.NoError(t, err)

	assert.Equal(t, int64(image.DefaultSize), statAfter.Size())
	assert.Equal(t, statBefore.ModTime(), statAfter.ModTime())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("guest data"), content[:10])
}

func TestEnsure_ExistingFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img")
	require.NoError(t, os.WriteFile(path, []byte("small"), 0o600))

	created, err := image.Ensure(path, image.DefaultSize)
	require.NoError(t, err)
	assert.False(t, created)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("small"), content)
}

func TestEnsure_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// Parent of the image is a regular file, so the directory can not be
	// created.
	_, err := image.Ensure(filepath.Join(blocker, "img"), image.DefaultSize)
	require.ErrorIs(t, err, image.ErrProvisioningFailure)

	var provisionErr *image.ProvisionError
	require.ErrorAs(t, err, &provisionErr)
	assert.Equal(t, filepath.Join(blocker, "img"), provisionErr.Path)
}

func TestEnsure_DirectoryAtPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img")
	require.NoError(t, os.Mkdir(path, 0o755))

	created, err := image.Ensure(path, image.DefaultSize)
	require.ErrorIs(t, err, image.ErrProvisioningFailure)
	require.ErrorIs(t, err, image.ErrIsDirectory)
	assert.False(t, created)

	assert.DirExists(t, path, "directory must be left alone")
}
