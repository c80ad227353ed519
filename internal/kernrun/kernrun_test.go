// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package kernrun_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aibor/kernrun/internal/build"
	"github.com/aibor/kernrun/internal/image"
	"github.com/aibor/kernrun/internal/kernrun"
	"github.com/aibor/kernrun/internal/qemu"
	"github.com/aibor/kernrun/internal/sys"
	"github.com/aibor/kernrun/internal/target"
	"github.com/aibor/kernrun/internal/toolchain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// env is a fake tool environment. Every fake executable records its arguments
// one per line in a file named like the executable with suffix ".args".
type env struct {
	dir     string
	sysroot string
	bin     string
}

func newEnv(t *testing.T) *env {
	t.Helper()

	dir := t.TempDir()
	e := &env{
		dir:     dir,
		sysroot: filepath.Join(dir, "sysroot"),
		bin:     filepath.Join(dir, "bin"),
	}

	require.NoError(t, os.MkdirAll(filepath.Join(e.sysroot, "lib", "bin"), 0o755))
	require.NoError(t, os.MkdirAll(e.bin, 0o755))

	e.script(t, filepath.Join(e.sysroot, "lib", "bin", "llvm-objdump"), "exit 0")
	e.script(t, filepath.Join(e.sysroot, "lib", "bin", "llvm-objcopy"), "exit 0")
	e.script(t, filepath.Join(e.bin, "cargo"), "exit 0")
	e.script(t, filepath.Join(e.bin, "rustup"), "exit 0")
	e.script(t, filepath.Join(e.bin, "qemu"), "exit 0")

	return e
}

func (e *env) script(t *testing.T, path, body string) {
	t.Helper()

	content := "#!/bin/sh\nprintf '%s\\n' \"$@\" >> " + path + ".args\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
}

func (e *env) args(t *testing.T, path string) []string {
	t.Helper()

	content, err := os.ReadFile(path + ".args")
	if os.IsNotExist(err) {
		return nil
	}

	require.NoError(t, err)

	return strings.Fields(string(content))
}

func (e *env) spec(tcp bool, transport qemu.Transport) kernrun.Spec {
	layout := target.Layout{Dir: filepath.Join(e.dir, "target")}
	cfg := build.NewConfig("riscv64", target.Release, tcp, layout)

	spec := kernrun.NewSpec(cfg, transport)
	spec.Cargo = filepath.Join(e.bin, "cargo")
	spec.Rustup = filepath.Join(e.bin, "rustup")
	spec.Locator = toolchain.NewSysrootLocator(e.sysroot)
	spec.Qemu.Executable = filepath.Join(e.bin, "qemu")
	spec.Probe.Delay = 10 * time.Millisecond
	spec.Probe.Timeout = 100 * time.Millisecond

	return spec
}

func TestBuildAndLaunch(t *testing.T) {
	e := newEnv(t)
	e.script(t, filepath.Join(e.bin, "qemu"), "exit 7")

	spec := e.spec(false, qemu.TransportLegacy)

	err := kernrun.BuildAndLaunch(t.Context(), &spec, sys.IO{})

	var cmdErr *qemu.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 7, cmdErr.ExitCode, "emulator exit code is propagated")

	assert.True(t, strings.HasSuffix(
		spec.Build.Target.KernelPath,
		"riscv64imac-unknown-none-elf/release/riscv",
	))

	cargoArgs := e.args(t, filepath.Join(e.bin, "cargo"))
	assert.Equal(t, []string{
		"build",
		"--target", "riscv64imac-unknown-none-elf",
		"--release",
		"--no-default-features",
	}, cargoArgs)

	objcopyArgs := e.args(t, filepath.Join(e.sysroot, "lib", "bin", "llvm-objcopy"))
	assert.Contains(t, objcopyArgs, spec.Build.Target.BinaryPath)

	stat, err := os.Stat(spec.Build.Target.ImagePath)
	require.NoError(t, err)
	assert.Equal(t, int64(image.DefaultSize), stat.Size())

	qemuArgs := e.args(t, filepath.Join(e.bin, "qemu"))
	assert.Contains(t, qemuArgs, spec.Build.Target.KernelPath)
	assert.Contains(t, qemuArgs, "user,id=net0,hostfwd=tcp::5555-:5555")
	assert.NotContains(t, qemuArgs, "virtio-mouse-device,id=mouse0")
	assert.NotContains(t, qemuArgs, "virtio-mmio.force-legacy=false")

	devices := 0

	for idx, arg := range qemuArgs {
		if arg == "-device" && idx+1 < len(qemuArgs) {
			devices++
		}
	}
	// Console is attached via -serial, all others as -device.
	assert.Equal(t, 4, devices)
	assert.Contains(t, qemuArgs, "mon:stdio")
}

func TestLaunch_Modern(t *testing.T) {
	e := newEnv(t)
	spec := e.spec(true, qemu.TransportModern)

	require.NoError(t, kernrun.Launch(t.Context(), &spec, sys.IO{}))

	qemuArgs := e.args(t, filepath.Join(e.bin, "qemu"))
	assert.Contains(t, qemuArgs, "virtio-mmio.force-legacy=false")

	assert.Empty(t, e.args(t, filepath.Join(e.bin, "cargo")),
		"launch must not build")
}

func TestLaunch_ImageKept(t *testing.T) {
	e := newEnv(t)
	spec := e.spec(false, qemu.TransportLegacy)

	require.NoError(t, kernrun.Launch(t.Context(), &spec, sys.IO{}))
	require.NoError(t, os.WriteFile(spec.Build.Target.ImagePath, []byte("guest"), 0o644))
	require.NoError(t, kernrun.Launch(t.Context(), &spec, sys.IO{}))

	content, err := os.ReadFile(spec.Build.Target.ImagePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("guest"), content)
}

func TestBuildAndLaunch_BuildFailure(t *testing.T) {
	e := newEnv(t)
	e.script(t, filepath.Join(e.bin, "cargo"), "exit 101")

	spec := e.spec(false, qemu.TransportLegacy)

	err := kernrun.BuildAndLaunch(t.Context(), &spec, sys.IO{})
	require.ErrorIs(t, err, build.ErrBuildFailure)

	assert.NoFileExists(t, spec.Build.Target.ImagePath)
	assert.Empty(t, e.args(t, filepath.Join(e.bin, "qemu")))
}

func TestBuildAndLaunch_ToolchainNotFound(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.Remove(filepath.Join(e.sysroot, "lib", "bin", "llvm-objcopy")))

	spec := e.spec(false, qemu.TransportLegacy)

	err := kernrun.BuildAndLaunch(t.Context(), &spec, sys.IO{})
	require.ErrorIs(t, err, toolchain.ErrToolchainNotFound)

	assert.Empty(t, e.args(t, filepath.Join(e.bin, "cargo")))
}

func TestLaunch_ProvisioningFailure(t *testing.T) {
	e := newEnv(t)
	spec := e.spec(false, qemu.TransportLegacy)

	// Block the artifact directory with a regular file.
	require.NoError(t, os.MkdirAll(filepath.Dir(spec.Build.Target.ArtifactDir), 0o755))
	require.NoError(t, os.WriteFile(spec.Build.Target.ArtifactDir, nil, 0o644))

	err := kernrun.Launch(t.Context(), &spec, sys.IO{})
	require.ErrorIs(t, err, image.ErrProvisioningFailure)

	assert.Empty(t, e.args(t, filepath.Join(e.bin, "qemu")))
}

func TestLaunch_ProbeDoesNotDelayExit(t *testing.T) {
	e := newEnv(t)
	spec := e.spec(false, qemu.TransportLegacy)
	spec.Probe.Delay = 500 * time.Millisecond

	start := time.Now()

	require.NoError(t, kernrun.Launch(t.Context(), &spec, sys.IO{}))
	assert.Less(t, time.Since(start), spec.Probe.Delay)

	// Let the abandoned probe finish before goleak checks.
	time.Sleep(spec.Probe.Delay + spec.Probe.Timeout)
}
