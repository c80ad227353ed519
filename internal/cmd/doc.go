// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for kernrun. It handles
// configuration layering, flag parsing, command dispatch and exit code
// mapping.
package cmd
