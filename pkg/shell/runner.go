// SPDX-License-Identifier: Apache-2.0

package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
)

// DefaultRetryDelay is the pause between two attempts of the same command.
const DefaultRetryDelay = time.Second

// Options controls a single Run invocation.
type Options struct {
	// Shell joins argv with spaces and runs it through bash, so pipelines are interpreted.
	Shell bool
	// Retries is the total number of attempts. Values below 1 mean a single attempt.
	Retries int
	// NoThrow suppresses the failure and returns whatever stdout the last attempt produced.
	NoThrow bool
}

// Runner executes external commands and returns their captured stdout.
type Runner interface {
	Run(ctx context.Context, argv []string, opts Options) (string, error)
}

// execFunc runs a process to completion and returns its stdout and stderr.
type execFunc func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)

// CommandRunner is the os/exec backed Runner.
type CommandRunner struct {
	retryDelay time.Duration
	exec       execFunc
}

type Option func(*CommandRunner)

// WithRetryDelay sets the pause between attempts. Negative values are treated as zero.
func WithRetryDelay(d time.Duration) Option {
	return func(r *CommandRunner) {
		if d < 0 {
			d = 0
		}
		r.retryDelay = d
	}
}

func NewRunner(opts ...Option) *CommandRunner {
	r := &CommandRunner{
		retryDelay: DefaultRetryDelay,
		exec:       execCommand,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes argv, retrying up to opts.Retries attempts until it exits zero.
// On failure it returns an ErrCommandExecution error unless opts.NoThrow is set.
func (r *CommandRunner) Run(ctx context.Context, argv []string, opts Options) (string, error) {
	if len(argv) == 0 {
		return "", errorx.IllegalArgument.New("command is required")
	}

	line := strings.Join(argv, " ")
	name, args := argv[0], argv[1:]
	if opts.Shell {
		name, args = "bash", []string{"-c", line}
	}

	attempts := opts.Retries
	if attempts < 1 {
		attempts = 1
	}

	var out string
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := Sleep(ctx, r.retryDelay); err != nil {
				break
			}
		}

		logx.As().Debug().
			Str("command", line).
			Int("attempt", attempt).
			Int("attempts", attempts).
			Msg("Executing command")

		stdout, stderr, err := r.exec(ctx, name, args...)
		out = string(stdout)
		if err == nil {
			return out, nil
		}

		lastErr = NewCommandError(err, line, exitCodeOf(err), strings.TrimSpace(string(stderr)))
		logx.As().Debug().
			Err(lastErr).
			Str("command", line).
			Int("attempt", attempt).
			Msg("Command failed")
	}

	if opts.NoThrow {
		return out, nil
	}

	return "", lastErr
}

// Sleep sleeps for the given duration or returns early if the context
// is canceled or its deadline expires.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func execCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

func exitCodeOf(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return ExitCodeNotStarted
}
