// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package build turns the user facing build options into cargo flags and runs
// the kernel build.
//
// The tcp feature toggle is binary. Enabled, it adds the "tcp" feature on top
// of the default features. Disabled, it turns off all default features, not
// only "tcp".
package build
