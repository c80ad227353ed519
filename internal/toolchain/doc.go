// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package toolchain discovers the binary utilities of the installed Rust
// toolchain.
//
// The tools are searched by executable name below the sysroot reported by the
// compiler. If a tool is present more than once, the first match in lexical
// path order is used. See [FSLocator].
package toolchain
