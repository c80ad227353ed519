// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package probe provides a best-effort TCP reachability check of the guest.
//
// A probe makes exactly one connection attempt after a fixed delay. It does
// not synchronize with the emulator in any way. The guest is just assumed to
// listen once the delay elapsed. The result is advisory only.
package probe
