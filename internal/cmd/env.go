// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"os"
	"strings"
)

// EnvArgsName is the environment variable additional arguments are read from.
const EnvArgsName = "KERNRUN_ARGS"

// EnvArgs returns kernrun arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(EnvArgsName))
}

// MergedArgs returns the environment arguments followed by the given command
// line arguments. Later flags take precedence, so the command line wins.
func MergedArgs(args []string) []string {
	return append(EnvArgs(), args...)
}
