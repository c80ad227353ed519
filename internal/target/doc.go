// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package target resolves the cross-compilation target triple and the paths of
// all build artifacts derived from it.
//
// No validation of the architecture is done. Any value is substituted into the
// triple template and so propagates into the artifact paths.
package target
