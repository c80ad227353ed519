// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package kernrun sequences building the kernel, provisioning its disk image
// and running it in QEMU.
//
// A launch starts the emulator and a guest network probe concurrently. Only
// the emulator is waited for. Its result is the result of the launch, while
// the probe outcome is just logged if it is available by then.
package kernrun
