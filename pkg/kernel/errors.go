// SPDX-License-Identifier: Apache-2.0

package kernel

import "github.com/joomcode/errorx"

var (
	ErrNamespace = errorx.NewNamespace("kernel")

	FormatErrTrait = errorx.RegisterTrait("format_error")

	// ErrMalformedVersionInfo is returned by Status when the module version output cannot be decoded.
	ErrMalformedVersionInfo = ErrNamespace.NewType("malformed_version_info", FormatErrTrait)

	ModuleNameProperty = errorx.RegisterProperty("module_name")
)
