// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"slices"
	"strings"
)

// Argument is a single QEMU argument with an optional value.
//
// Arguments are either unique, so their name may be present only once in a
// command line, or repeatable, so only identical name and value pairs collide.
type Argument struct {
	name       string
	value      string
	repeatable bool
}

// UniqueArg returns an [Argument] that may be used only once. Multiple values
// are joined by comma.
func UniqueArg(name string, value ...string) Argument {
	return Argument{
		name:  name,
		value: strings.Join(value, ","),
	}
}

// RepeatableArg returns an [Argument] that may be used multiple times with
// different values. Multiple values are joined by comma.
func RepeatableArg(name string, value ...string) Argument {
	return Argument{
		name:       name,
		value:      strings.Join(value, ","),
		repeatable: true,
	}
}

// String implements [fmt.Stringer].
func (a Argument) String() string {
	if a.value == "" {
		return "-" + a.name
	}

	return "-" + a.name + " " + a.value
}

// Name returns the name of the [Argument] without leading dash.
func (a Argument) Name() string {
	return a.name
}

// Value returns the value of the [Argument].
func (a Argument) Value() string {
	return a.value
}

// collides reports whether both [Argument]s can not be used together.
func (a Argument) collides(other Argument) bool {
	if a.name != other.name {
		return false
	}

	if a.repeatable && other.repeatable {
		return a.value == other.value
	}

	return true
}

// Arguments is an ordered list of [Argument]s.
type Arguments []Argument

// Add appends the given [Argument]s.
func (a *Arguments) Add(args ...Argument) {
	*a = append(*a, args...)
}

// Build compiles the list into a slice of strings which can be used with
// [exec.Command].
//
// It returns an error matching [ErrArgumentCollision] if any two arguments
// collide.
func (a Arguments) Build() ([]string, error) {
	out := make([]string, 0, 2*len(a))

	for idx, arg := range a {
		if i := slices.IndexFunc(a[:idx], arg.collides); i != -1 {
			return nil, fmt.Errorf("%w: %s, %s",
				ErrArgumentCollision, a[i].String(), arg.String())
		}

		out = append(out, "-"+arg.name)

		if arg.value != "" {
			out = append(out, arg.value)
		}
	}

	return out, nil
}
