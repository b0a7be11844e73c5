// SPDX-License-Identifier: Apache-2.0

package shell

import "github.com/joomcode/errorx"

var (
	ErrNamespace = errorx.NewNamespace("shell")

	CommandErrTrait = errorx.RegisterTrait("command_error")

	// ErrCommandExecution is returned when a command exits non-zero or cannot be started.
	ErrCommandExecution = ErrNamespace.NewType("command_execution", CommandErrTrait)

	ExitCodeProperty = errorx.RegisterProperty("exit_code")
	CommandProperty  = errorx.RegisterProperty("command")
	StderrProperty   = errorx.RegisterProperty("stderr")
)

// ExitCodeNotStarted is reported when the process could not be started at all.
const ExitCodeNotStarted = -1

// ExitCode extracts the exit code carried by an ErrCommandExecution error.
func ExitCode(err error) (int, bool) {
	if err == nil || !errorx.IsOfType(err, ErrCommandExecution) {
		return 0, false
	}

	v, ok := errorx.ExtractProperty(err, ExitCodeProperty)
	if !ok {
		return 0, false
	}

	code, ok := v.(int)
	return code, ok
}

// NewCommandError builds an ErrCommandExecution error for the given command line.
func NewCommandError(cause error, command string, exitCode int, stderr string) *errorx.Error {
	var e *errorx.Error
	if cause != nil {
		e = ErrCommandExecution.Wrap(cause, "command failed: %s", command)
	} else {
		e = ErrCommandExecution.New("command failed: %s", command)
	}

	return e.
		WithProperty(ExitCodeProperty, exitCode).
		WithProperty(CommandProperty, command).
		WithProperty(StderrProperty, stderr)
}
