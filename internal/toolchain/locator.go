// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package toolchain

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Locator finds toolchain executables by name.
type Locator interface {
	// Find returns the path of the executable with the given name. It returns
	// a [NotFoundError] if there is none.
	Find(tool string) (string, error)
}

// FSLocator searches for executables in a file system tree.
//
// The tree is walked in lexical order as done by [fs.WalkDir]. The first
// non-directory entry with a base name equal to the tool name is the result.
// Later matches are ignored.
type FSLocator struct {
	// FS is the tree to search.
	FS fs.FS

	// Root is prepended to the slash separated paths found in FS.
	Root string
}

// NewSysrootLocator returns an [FSLocator] that searches the given directory.
func NewSysrootLocator(sysroot string) *FSLocator {
	return &FSLocator{
		FS:   os.DirFS(sysroot),
		Root: sysroot,
	}
}

// Find implements [Locator].
func (l *FSLocator) Find(tool string) (string, error) {
	var found string

	walkFn := func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable sub directories are skipped.
			if entry != nil && path != "." {
				return fs.SkipDir
			}

			return err
		}

		if entry.IsDir() || entry.Name() != tool {
			return nil
		}

		found = path

		return fs.SkipAll
	}

	// Errors below the root are skipped, so any error left is about the root
	// itself. A root that can not be read has no candidates.
	err := fs.WalkDir(l.FS, ".", walkFn)
	if err != nil && !errors.Is(err, fs.SkipAll) {
		return "", &NotFoundError{Tool: tool, Root: l.Root, Err: err}
	}

	if found == "" {
		return "", &NotFoundError{Tool: tool, Root: l.Root}
	}

	return filepath.Join(l.Root, filepath.FromSlash(found)), nil
}
