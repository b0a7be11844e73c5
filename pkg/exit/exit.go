// SPDX-License-Identifier: Apache-2.0

package exit

import (
	"fmt"
	"os"
)

type Code int

func (ec Code) String() string {
	return fmt.Sprintf("%d", ec)
}

func (ec Code) Int() int {
	return int(ec)
}

func (ec Code) TerminateProcess() {
	os.Exit(int(ec))
}

// Valid reports whether the code fits in a process exit status.
func (ec Code) Valid() bool {
	return ec >= MinValidExitCode && ec <= MaxValidExitCode
}

const MinValidExitCode Code = 0
const MaxValidExitCode Code = 255

// POSIX standard exit code definitions.

const NormalTermination Code = 0
const GeneralError Code = 1
const UsageError Code = 64
const DataFormatError Code = 65
const MissingInputError Code = 66
const ServiceUnavailable Code = 69
const InternalError Code = 70
const SystemError Code = 71
const TemporaryFailure Code = 75
const PermissionDenied Code = 77
const ConfigurationError Code = 78

// Application specific exit code definitions.

// ModuleNotRunning is returned by `kmod module running` when the module or its target is absent.
const ModuleNotRunning Code = 3

// BelowMinimumVersion is returned by `kmod module target-version --min` when the target is older.
const BelowMinimumVersion Code = 4
