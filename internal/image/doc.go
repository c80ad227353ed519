// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package image provisions the raw disk image backing the guest's block device.
//
// Provisioning only ever creates the image. An existing file is neither
// validated nor modified, as the guest owns its content. There is no locking,
// so concurrent provisioning of the same path is not safe.
package image
