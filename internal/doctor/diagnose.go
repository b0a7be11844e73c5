// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/automa-saga/logx"
	"github.com/hashgraph/solo-kmod/internal/config"
	"github.com/hashgraph/solo-kmod/internal/version"
	"github.com/hashgraph/solo-kmod/pkg/exit"
	"github.com/hashgraph/solo-kmod/pkg/kernel"
	"github.com/hashgraph/solo-kmod/pkg/shell"
	"github.com/joomcode/errorx"
)

type contextKey string

// TraceIdKey is the context key holding the trace id of the current invocation.
const TraceIdKey contextKey = "traceId"

type ErrorDiagnosis struct {
	Error      error     `yaml:"error" json:"error"`
	Message    string    `yaml:"message" json:"message"`
	Cause      string    `yaml:"cause" json:"cause"`
	ErrorType  string    `yaml:"errorType" json:"errorType"`
	TraceId    string    `yaml:"traceId" json:"traceId"`
	Commit     string    `yaml:"commit" json:"commit"`
	Version    string    `yaml:"version" json:"version"`
	Pid        int       `yaml:"pid" json:"pid"`
	Code       int       `yaml:"code" json:"code"`
	ExitCode   exit.Code `yaml:"exitCode" json:"exitCode"`
	Command    string    `yaml:"command" json:"command"`
	Stderr     string    `yaml:"stderr" json:"stderr"`
	Logfile    string    `yaml:"log" json:"log"`
	Resolution []string  `yaml:"steps" json:"steps"`
}

func toErrorCode(err error) int {
	switch {
	case errorx.IsOfType(err, errorx.IllegalArgument):
		return 10400
	case errorx.IsOfType(err, errorx.IllegalFormat):
		return 10415
	case errorx.IsOfType(err, kernel.ErrMalformedVersionInfo):
		return 10422
	case errorx.IsTimeout(err):
		return 10408
	case errorx.IsOfType(err, shell.ErrCommandExecution):
		return 10502
	default:
		if errorx.HasTrait(err, errorx.NotFound()) {
			return 10404
		}
		return 10500
	}
}

// toExitCode maps an error to the status the process terminates with.
func toExitCode(err error) exit.Code {
	switch {
	case errorx.IsOfType(err, errorx.IllegalArgument):
		return exit.UsageError
	case errorx.IsOfType(err, errorx.IllegalFormat), errorx.IsOfType(err, kernel.ErrMalformedVersionInfo):
		return exit.DataFormatError
	case errorx.IsOfType(err, config.NotFoundError):
		return exit.ConfigurationError
	case errorx.IsTimeout(err):
		return exit.TemporaryFailure
	case errorx.IsOfType(err, shell.ErrCommandExecution):
		return commandExitCode(err)
	default:
		return exit.GeneralError
	}
}

// commandExitCode passes the status of a failed external command through to the caller.
// Commands that never started or ended outside the exit status range map to GeneralError.
func commandExitCode(err error) exit.Code {
	code, ok := shell.ExitCode(err)
	if !ok {
		return exit.GeneralError
	}

	c := exit.Code(code)
	if c == exit.NormalTermination || !c.Valid() {
		return exit.GeneralError
	}
	return c
}

func toErrorMessage(err error) (string, string) {
	e := errorx.Cast(err)
	if e == nil {
		return err.Error(), ""
	}

	if e.Cause() == nil {
		return e.Message(), ""
	}
	return e.Message(), fmt.Sprintf("%s", e.Cause())
}

func stringProperty(err error, p errorx.Property) string {
	if v, ok := errorx.ExtractProperty(err, p); ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func commandResolution(err error) []string {
	command := stringProperty(err, shell.CommandProperty)
	stderr := strings.ToLower(stringProperty(err, shell.StderrProperty))

	switch {
	case strings.Contains(stderr, "not found"):
		if strings.HasPrefix(command, "modprobe") {
			return []string{
				"Ensure the kernel module is installed for the running kernel (see `uname -r`).",
				"Run `depmod -a` if the module was installed manually.",
			}
		}
		return []string{fmt.Sprintf("Ensure the tools required by %q are installed and on PATH.", command)}
	case strings.Contains(stderr, "in use"), strings.Contains(stderr, "busy"):
		return []string{"Stop the devices using the module (e.g. remove VDO volumes) before unloading it."}
	case strings.Contains(stderr, "operation not permitted"), strings.Contains(stderr, "permission denied"):
		return []string{"Run the command as root or with CAP_SYS_MODULE."}
	default:
		if code, ok := shell.ExitCode(err); ok && code == shell.ExitCodeNotStarted {
			return []string{fmt.Sprintf("Ensure %q can be executed on this host.", command)}
		}
		return []string{"Check the command output above and the system log (`dmesg`) for details."}
	}
}

func findResolution(err error) []string {
	switch {
	case errorx.IsOfType(err, errorx.IllegalArgument):
		if arg, ok := errorx.ExtractProperty(err, errorx.PropertyPayload()); ok {
			return []string{fmt.Sprintf("Ensure %q is provided and valid.", arg)}
		}
		return []string{"Ensure all required arguments are provided."}
	case errorx.IsOfType(err, errorx.IllegalFormat):
		return []string{"Ensure provided data is in correct format."}
	case errorx.IsOfType(err, config.NotFoundError):
		if arg, ok := errorx.ExtractProperty(err, errorx.PropertyPayload()); ok {
			return []string{fmt.Sprintf("Ensure configuration file %q exists, is correctly formatted and accessible", arg)}
		}
		return []string{"Ensure configuration file exists and is accessible."}
	case errorx.IsOfType(err, kernel.ErrMalformedVersionInfo):
		return []string{"Inspect `modinfo` output of the module; its version lines could not be parsed."}
	case errorx.IsTimeout(err):
		return []string{"Another kmod process holds the module lock. Retry once it finishes or raise module.lockTimeout."}
	case errorx.IsOfType(err, shell.ErrCommandExecution):
		return commandResolution(err)
	default:
		return []string{"Check error message for details or contact support"}
	}
}

func traceIdFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(TraceIdKey).(string); ok {
		return id
	}
	return ""
}

// Diagnose attempts to find a resolution and provide a human friendly error response
func Diagnose(ctx context.Context, ex error) *ErrorDiagnosis {
	msg, cause := toErrorMessage(ex)
	return &ErrorDiagnosis{
		Error:      ex,
		ErrorType:  errorx.GetTypeName(ex),
		Message:    msg,
		Cause:      cause,
		TraceId:    traceIdFrom(ctx),
		Code:       toErrorCode(ex),
		ExitCode:   toExitCode(ex),
		Command:    stringProperty(ex, shell.CommandProperty),
		Stderr:     stringProperty(ex, shell.StderrProperty),
		Commit:     version.Commit(),
		Version:    version.Number(),
		Pid:        os.Getpid(),
		Logfile:    config.Get().Log.Filename,
		Resolution: findResolution(ex),
	}
}

// Print writes the diagnosis and the resolution steps to w.
// Optional instructions are printed ahead of the default resolution steps.
func Print(w io.Writer, resp *ErrorDiagnosis, instructions ...string) {
	_, _ = fmt.Fprintf(w, "\n%s%s************************************** Error Diagnostics ******************************************%s\n", Bold, Red, Reset)
	_, _ = fmt.Fprintf(w, "%s*%s\t%sError:%s %s\n", Red, Reset, Bold+White, Reset, resp.Message)
	if resp.Cause != "" {
		_, _ = fmt.Fprintf(w, "%s*%s\t%sCause:%s %s\n", Red, Reset, Bold+White, Reset, resp.Cause)
	}
	_, _ = fmt.Fprintf(w, "%s*%s\t%sError Type:%s %s\n", Red, Reset, Bold+White, Reset, resp.ErrorType)
	_, _ = fmt.Fprintf(w, "%s*%s\t%sError Code:%s %d\n", Red, Reset, Bold+White, Reset, resp.Code)
	if resp.Command != "" {
		_, _ = fmt.Fprintf(w, "%s*%s\t%sCommand:%s %s\n", Red, Reset, Bold+White, Reset, resp.Command)
	}
	if resp.Stderr != "" {
		_, _ = fmt.Fprintf(w, "%s*%s\t%sStderr:%s %s\n", Red, Reset, Bold+White, Reset, resp.Stderr)
	}
	_, _ = fmt.Fprintf(w, "%s*%s\t%sCommit:%s %s\n", Red, Reset, Gray, Reset, resp.Commit)
	_, _ = fmt.Fprintf(w, "%s*%s\t%sPid:%s %d\n", Red, Reset, Gray, Reset, resp.Pid)
	_, _ = fmt.Fprintf(w, "%s*%s\t%sTraceId:%s %s\n", Red, Reset, Gray, Reset, resp.TraceId)
	_, _ = fmt.Fprintf(w, "%s*%s\t%sVersion:%s %s\n", Red, Reset, Gray, Reset, resp.Version)
	if resp.Logfile != "" {
		_, _ = fmt.Fprintf(w, "%s*%s\t%sLogfile:%s %s\n", Red, Reset, Cyan, Reset, resp.Logfile)
	}
	_, _ = fmt.Fprintf(w, "%s%s***************************************************************************************************%s\n", Bold, Red, Reset)
	_, _ = fmt.Fprintf(w, "\n%s%s****************************************** Resolution *********************************************%s\n", Bold, Yellow, Reset)

	if len(instructions) > 0 && instructions[0] != "" {
		for _, line := range strings.Split(instructions[0], "\n") {
			if line == "" {
				_, _ = fmt.Fprintf(w, "%s*%s\n", Yellow, Reset)
			} else {
				_, _ = fmt.Fprintf(w, "%s*%s\t%s\n", Yellow, Reset, Bold+White+line+Reset)
			}
		}
		if len(resp.Resolution) > 0 {
			_, _ = fmt.Fprintf(w, "%s*%s\n", Yellow, Reset)
		}
	}

	for _, r := range resp.Resolution {
		_, _ = fmt.Fprintf(w, "%s*%s\t%s\n", Yellow, Reset, White+r+Reset)
	}

	_, _ = fmt.Fprintf(w, "%s%s***************************************************************************************************%s\n", Bold, Yellow, Reset)
}

// CheckErr prints the diagnosis of err to stderr and terminates the process with the mapped exit code.
// It returns without doing anything when err is nil.
func CheckErr(ctx context.Context, err error, instructions ...string) {
	if err == nil {
		return
	}

	logx.As().Error().Err(err).Msg("error occurred")
	_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)

	resp := Diagnose(ctx, err)
	Print(os.Stderr, resp, instructions...)

	resp.ExitCode.TerminateProcess()
}
