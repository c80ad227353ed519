// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu provides utilities for composing and running the QEMU system
// emulator for the kernel. It expects the required QEMU binary to be present
// on the system.
//
// The guest is a "virt" machine with a fixed set of virtio-mmio devices, see
// [NewTopology]. Firmware and kernel output as well as the QEMU monitor are
// multiplexed on stdio.
package qemu
