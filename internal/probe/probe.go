// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package probe

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Defaults of the guest probe.
const (
	DefaultDelay   = 4 * time.Second
	DefaultHost    = "localhost"
	DefaultPort    = 5555
	DefaultPayload = "hello"

	// DefaultTimeout limits the single connection attempt.
	DefaultTimeout = 5 * time.Second
)

// Spec defines a single probe.
type Spec struct {
	Delay   time.Duration
	Timeout time.Duration
	Host    string
	Port    int
	Payload string
}

// DefaultSpec returns the [Spec] used for the guest.
func DefaultSpec() Spec {
	return Spec{
		Delay:   DefaultDelay,
		Timeout: DefaultTimeout,
		Host:    DefaultHost,
		Port:    DefaultPort,
		Payload: DefaultPayload,
	}
}

// Addr returns the target address.
func (s Spec) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Result is the outcome of a probe.
type Result struct {
	Addr string

	// Sent is the number of payload bytes written.
	Sent int

	// Err is nil on success. Otherwise it matches [ErrProbeFailure].
	Err error
}

// Start runs the probe in the background and returns immediately.
//
// After [Spec.Delay] a single connection attempt is made. On success the
// payload is written and the connection closed. There are no retries and no
// way to cancel. The result is sent on the returned channel, which has a
// buffer of one so the probe never blocks, even if nobody receives.
func Start(spec Spec) <-chan Result {
	results := make(chan Result, 1)

	go func() {
		time.Sleep(spec.Delay)
		results <- run(spec)
	}()

	return results
}

func run(spec Spec) Result {
	addr := spec.Addr()
	result := Result{Addr: addr}

	conn, err := net.DialTimeout("tcp", addr, spec.Timeout)
	if err != nil {
		result.Err = &Error{Addr: addr, Err: err}
		return result
	}

	if spec.Timeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(spec.Timeout))
	}

	result.Sent, err = conn.Write([]byte(spec.Payload))
	if err != nil {
		err = fmt.Errorf("write: %w", err)
	}

	closeErr := conn.Close()
	if err == nil && closeErr != nil {
		err = fmt.Errorf("close: %w", closeErr)
	}

	if err != nil {
		result.Err = &Error{Addr: addr, Err: err}
	}

	return result
}
