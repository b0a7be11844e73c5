// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hashgraph/solo-kmod/internal/config"
	"github.com/hashgraph/solo-kmod/pkg/exit"
	"github.com/hashgraph/solo-kmod/pkg/kernel"
	"github.com/hashgraph/solo-kmod/pkg/shell"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose_Codes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		exitCode exit.Code
	}{
		{
			name:     "illegal argument",
			err:      errorx.IllegalArgument.New("invalid module name"),
			code:     10400,
			exitCode: exit.UsageError,
		},
		{
			name:     "illegal format",
			err:      errorx.IllegalFormat.New("failed to parse configuration"),
			code:     10415,
			exitCode: exit.DataFormatError,
		},
		{
			name:     "config not found",
			err:      config.NotFoundError.New("failed to read config file"),
			code:     10404,
			exitCode: exit.ConfigurationError,
		},
		{
			name:     "malformed version info",
			err:      kernel.ErrMalformedVersionInfo.New("cannot decode"),
			code:     10422,
			exitCode: exit.DataFormatError,
		},
		{
			name:     "lock timeout",
			err:      errorx.TimeoutElapsed.New("timed out waiting for lock"),
			code:     10408,
			exitCode: exit.TemporaryFailure,
		},
		{
			name:     "command failure",
			err:      shell.NewCommandError(nil, "modprobe kvdo", 1, "FATAL: Module kvdo not found."),
			code:     10502,
			exitCode: exit.GeneralError,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			code:     10500,
			exitCode: exit.GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Diagnose(context.Background(), tt.err)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.exitCode, resp.ExitCode)
			assert.NotEmpty(t, resp.Resolution)
		})
	}
}

func TestDiagnose_CommandExitCode(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		exitCode exit.Code
	}{
		{name: "failing command status", status: 127, exitCode: exit.Code(127)},
		{name: "modprobe failure", status: 1, exitCode: exit.GeneralError},
		{name: "command never started", status: shell.ExitCodeNotStarted, exitCode: exit.GeneralError},
		{name: "status outside exit range", status: 300, exitCode: exit.GeneralError},
		{name: "zero status", status: 0, exitCode: exit.GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := shell.NewCommandError(nil, "dmsetup targets", tt.status, "")
			resp := Diagnose(context.Background(), err)
			assert.Equal(t, tt.exitCode, resp.ExitCode)
			assert.True(t, resp.ExitCode.Valid())
		})
	}

	t.Run("wrapped command failure keeps the status", func(t *testing.T) {
		err := errorx.Decorate(shell.NewCommandError(nil, "modprobe -r kvdo", 5, "in use"), "failed to stop kvdo")
		assert.Equal(t, exit.Code(5), Diagnose(context.Background(), err).ExitCode)
	})
}

func TestDiagnose_CommandDetails(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIdKey, "trace-1")
	err := shell.NewCommandError(errors.New("exit status 1"), "modprobe -r kvdo", 1, "modprobe: FATAL: Module kvdo is in use.\n")

	resp := Diagnose(ctx, err)
	assert.Equal(t, "trace-1", resp.TraceId)
	assert.Equal(t, "command failed: modprobe -r kvdo", resp.Message)
	assert.Equal(t, "exit status 1", resp.Cause)
	assert.Equal(t, "modprobe -r kvdo", resp.Command)
	assert.Equal(t, "modprobe: FATAL: Module kvdo is in use.", resp.Stderr)
	assert.Contains(t, resp.Resolution[0], "before unloading")
}

func TestFindResolution_Commands(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "module not installed",
			err:      shell.NewCommandError(nil, "modprobe kvdo", 1, "FATAL: Module kvdo not found in directory"),
			contains: "uname -r",
		},
		{
			name:     "tool missing",
			err:      shell.NewCommandError(nil, "dmsetup targets", 127, "bash: dmsetup: command not found"),
			contains: "on PATH",
		},
		{
			name:     "not root",
			err:      shell.NewCommandError(nil, "modprobe kvdo", 1, "Operation not permitted"),
			contains: "as root",
		},
		{
			name:     "not started",
			err:      shell.NewCommandError(errors.New("fork/exec"), "modinfo kvdo", shell.ExitCodeNotStarted, ""),
			contains: "can be executed",
		},
		{
			name:     "unknown failure",
			err:      shell.NewCommandError(nil, "modprobe kvdo", 1, "something odd"),
			contains: "dmesg",
		},
		{
			name:     "illegal argument payload",
			err:      errorx.IllegalArgument.New("bad").WithProperty(errorx.PropertyPayload(), "module.name"),
			contains: `"module.name"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := findResolution(tt.err)
			require.NotEmpty(t, steps)
			assert.Contains(t, steps[0], tt.contains)
		})
	}
}

func TestPrint(t *testing.T) {
	err := shell.NewCommandError(nil, "modprobe kvdo", 1, "FATAL: Module kvdo not found.")
	resp := Diagnose(context.Background(), err)

	var buf bytes.Buffer
	Print(&buf, resp, "Custom step one\n\nCustom step two")

	out := buf.String()
	assert.Contains(t, out, "Error Diagnostics")
	assert.Contains(t, out, "command failed: modprobe kvdo")
	assert.Contains(t, out, "Command:")
	assert.Contains(t, out, "Custom step one")
	assert.Contains(t, out, "Custom step two")
	assert.Contains(t, out, "uname -r")
	assert.NotContains(t, out, "Cause:")
}

func TestCheckErr_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		CheckErr(context.Background(), nil)
	})
}
