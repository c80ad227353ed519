// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package kernrun

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aibor/kernrun/internal/build"
	"github.com/aibor/kernrun/internal/image"
	"github.com/aibor/kernrun/internal/probe"
	"github.com/aibor/kernrun/internal/qemu"
	"github.com/aibor/kernrun/internal/sys"
	"github.com/aibor/kernrun/internal/toolchain"
	"golang.org/x/sync/errgroup"
)

// ResolveToolchain finds the toolchain executables with the [Spec.Locator], or
// in the sysroot of [Spec.Compiler] if no locator is set.
func ResolveToolchain(ctx context.Context, spec *Spec) (toolchain.Paths, error) {
	var (
		paths toolchain.Paths
		err   error
	)

	if spec.Locator != nil {
		paths, err = toolchain.Resolve("", spec.Locator)
	} else {
		paths, err = toolchain.Discover(ctx, spec.Compiler)
	}

	if err != nil {
		return toolchain.Paths{}, fmt.Errorf("resolve toolchain: %w", err)
	}

	slog.Debug("Toolchain resolved",
		slog.String("sysroot", paths.Sysroot),
		slog.String("objdump", paths.Objdump),
		slog.String("objcopy", paths.Objcopy))

	return paths, nil
}

// Build compiles the kernel and strips it into a raw binary.
func Build(ctx context.Context, spec *Spec, stdio sys.IO) error {
	paths, err := ResolveToolchain(ctx, spec)
	if err != nil {
		return err
	}

	cargo := build.Cargo{Executable: spec.Cargo, IO: stdio}

	err = cargo.Build(ctx, spec.Build)
	if err != nil {
		return err
	}

	err = build.ExtractBinary(ctx, stdio, paths.Objcopy, spec.Build)
	if err != nil {
		return err
	}

	slog.Info("Kernel built",
		slog.String("kernel", spec.Build.Target.KernelPath),
		slog.String("binary", spec.Build.Target.BinaryPath))

	return nil
}

// Launch provisions the disk image and runs the emulator with the already
// built kernel. It blocks until the emulator terminates.
//
// The guest probe is started concurrently with the emulator. Its outcome does
// not affect the result. Emulator failures are returned as
// [qemu.CommandError] carrying the emulator's exit code.
func Launch(ctx context.Context, spec *Spec, stdio sys.IO) error {
	imagePath := spec.Build.Target.ImagePath

	// The image must exist before the emulator starts.
	_, err := image.Ensure(imagePath, spec.ImageSize)
	if err != nil {
		return err
	}

	cmd, topology, err := newQemuCommand(spec)
	if err != nil {
		return err
	}

	slog.Debug("QEMU command", slog.String("command", cmd.String()))

	probeSpec := spec.Probe
	probeSpec.Port = topology.HostPort

	// The probe is not synchronized with the guest boot. It just assumes the
	// guest is listening once its delay elapsed.
	results := probe.Start(probeSpec)
	exited := make(chan struct{})

	var group errgroup.Group

	group.Go(func() error {
		defer close(exited)
		return cmd.Run(ctx, stdio)
	})

	group.Go(func() error {
		logProbeResult(results, exited)
		return nil
	})

	err = group.Wait()
	if err != nil {
		return fmt.Errorf("qemu: %w", err)
	}

	return nil
}

// BuildAndLaunch runs [Build] and [Launch] in sequence.
func BuildAndLaunch(ctx context.Context, spec *Spec, stdio sys.IO) error {
	err := Build(ctx, spec, stdio)
	if err != nil {
		return err
	}

	return Launch(ctx, spec, stdio)
}

func newQemuCommand(spec *Spec) (*qemu.Command, qemu.Topology, error) {
	topology := qemu.NewTopology(spec.Build.Target.ImagePath, spec.Transport)

	qemuSpec := qemu.CommandSpec{
		Executable: spec.Qemu.Executable,
		Kernel:     spec.Build.Target.KernelPath,
		Display:    spec.Qemu.Display,
		Topology:   topology,
	}
	qemuSpec.AddDefaultsFor(spec.Build.Arch)

	cmd, err := qemu.NewCommand(qemuSpec)
	if err != nil {
		return nil, qemu.Topology{}, fmt.Errorf("new qemu command: %w", err)
	}

	return cmd, topology, nil
}

// logProbeResult logs the probe outcome as soon as it arrives. Once the
// emulator exited, it does not wait for the probe anymore.
func logProbeResult(results <-chan probe.Result, exited <-chan struct{}) {
	var result probe.Result

	select {
	case result = <-results:
	case <-exited:
		select {
		case result = <-results:
		default:
			slog.Info("Guest probe did not finish before emulator exit")
			return
		}
	}

	if result.Err != nil {
		slog.Warn("Guest probe failed", slog.Any("error", result.Err))
		return
	}

	slog.Info("Guest probe succeeded",
		slog.String("addr", result.Addr),
		slog.Int("bytes", result.Sent))
}
