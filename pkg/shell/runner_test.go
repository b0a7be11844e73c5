// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	name string
	args []string
}

// fakeExec fails until the given attempt number succeeds. succeedOn <= 0 never succeeds.
func fakeExec(succeedOn int, stdout string, calls *[]recordedCall) execFunc {
	return func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		*calls = append(*calls, recordedCall{name: name, args: args})
		if succeedOn > 0 && len(*calls) >= succeedOn {
			return []byte(stdout), nil, nil
		}
		return []byte(stdout), []byte("boom\n"), errors.New("exit status 1")
	}
}

func newTestRunner(fn execFunc) *CommandRunner {
	r := NewRunner(WithRetryDelay(0))
	r.exec = fn
	return r
}

func TestCommandRunner_Run_Direct(t *testing.T) {
	var calls []recordedCall
	r := newTestRunner(fakeExec(1, "ok\n", &calls))

	out, err := r.Run(context.Background(), []string{"modprobe", "-r", "kvdo"}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
	require.Len(t, calls, 1)
	assert.Equal(t, "modprobe", calls[0].name)
	assert.Equal(t, []string{"-r", "kvdo"}, calls[0].args)
}

func TestCommandRunner_Run_Shell(t *testing.T) {
	var calls []recordedCall
	r := newTestRunner(fakeExec(1, "", &calls))

	_, err := r.Run(context.Background(), []string{"lsmod", "|", "grep", "-q", "'kvdo'"}, Options{Shell: true})
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "bash", calls[0].name)
	assert.Equal(t, []string{"-c", "lsmod | grep -q 'kvdo'"}, calls[0].args)
}

func TestCommandRunner_Run_Retries(t *testing.T) {
	t.Run("should attempt exactly retries times when the command keeps failing", func(t *testing.T) {
		var calls []recordedCall
		r := newTestRunner(fakeExec(0, "", &calls))

		_, err := r.Run(context.Background(), []string{"dmsetup", "targets"}, Options{Retries: 20})
		require.Error(t, err)
		assert.True(t, errorx.IsOfType(err, ErrCommandExecution))
		assert.Len(t, calls, 20)
	})

	t.Run("should stop at the first success", func(t *testing.T) {
		var calls []recordedCall
		r := newTestRunner(fakeExec(3, "", &calls))

		_, err := r.Run(context.Background(), []string{"dmsetup", "targets"}, Options{Retries: 20})
		require.NoError(t, err)
		assert.Len(t, calls, 3)
	})

	t.Run("should treat zero retries as a single attempt", func(t *testing.T) {
		var calls []recordedCall
		r := newTestRunner(fakeExec(0, "", &calls))

		_, err := r.Run(context.Background(), []string{"lsmod"}, Options{})
		require.Error(t, err)
		assert.Len(t, calls, 1)
	})

	t.Run("should stop retrying when the context is canceled", func(t *testing.T) {
		var calls []recordedCall
		r := NewRunner(WithRetryDelay(time.Hour))
		r.exec = fakeExec(0, "", &calls)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := r.Run(ctx, []string{"lsmod"}, Options{Retries: 20})
		require.Error(t, err)
		assert.Len(t, calls, 1)
	})
}

func TestCommandRunner_Run_NoThrow(t *testing.T) {
	var calls []recordedCall
	r := newTestRunner(fakeExec(0, "partial output\n", &calls))

	out, err := r.Run(context.Background(), []string{"modinfo", "kvdo"}, Options{NoThrow: true})
	require.NoError(t, err)
	assert.Equal(t, "partial output\n", out)
}

func TestCommandRunner_Run_EmptyCommand(t *testing.T) {
	r := NewRunner()

	_, err := r.Run(context.Background(), nil, Options{})
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, errorx.IllegalArgument))
}

func TestCommandRunner_Run_ErrorProperties(t *testing.T) {
	var calls []recordedCall
	r := newTestRunner(fakeExec(0, "", &calls))

	_, err := r.Run(context.Background(), []string{"modprobe", "kvdo"}, Options{})
	require.Error(t, err)

	cmd, ok := errorx.ExtractProperty(err, CommandProperty)
	require.True(t, ok)
	assert.Equal(t, "modprobe kvdo", cmd)

	stderr, ok := errorx.ExtractProperty(err, StderrProperty)
	require.True(t, ok)
	assert.Equal(t, "boom", stderr)

	// the fake does not produce an *exec.ExitError
	code, ok := ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, ExitCodeNotStarted, code)
}

func TestCommandRunner_Run_RealProcess(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash is not available")
	}

	r := NewRunner(WithRetryDelay(0))

	out, err := r.Run(context.Background(), []string{"echo", "hello", "|", "tr", "a-z", "A-Z"}, Options{Shell: true})
	require.NoError(t, err)
	assert.Equal(t, "HELLO\n", out)

	_, err = r.Run(context.Background(), []string{"exit", "3"}, Options{Shell: true, Retries: 2})
	require.Error(t, err)
	code, ok := ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestExitCode(t *testing.T) {
	_, ok := ExitCode(nil)
	assert.False(t, ok)

	_, ok = ExitCode(errors.New("plain"))
	assert.False(t, ok)

	code, ok := ExitCode(NewCommandError(nil, "modprobe -r kvdo", 1, "Module kvdo is in use"))
	require.True(t, ok)
	assert.Equal(t, 1, code)
}

func TestSleep(t *testing.T) {
	require.NoError(t, Sleep(context.Background(), 0))
	require.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
}
