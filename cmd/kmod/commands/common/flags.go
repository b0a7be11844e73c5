// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"fmt"
	"time"

	"github.com/hashgraph/solo-kmod/internal/doctor"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	FlagConfig = FlagDefinition[string]{
		Name:        "config",
		ShortName:   "c",
		Description: "config file path",
		Default:     "",
	}

	FlagOutput = FlagDefinition[string]{
		Name:        "output",
		ShortName:   "o",
		Description: fmt.Sprintf("Output format %s", []string{FormatYAML, FormatJSON}),
		Default:     FormatYAML,
	}

	FlagModule = FlagDefinition[string]{
		Name:        "module",
		ShortName:   "m",
		Description: "Kernel module to manage (overrides module.name)",
		Default:     "",
	}

	FlagTarget = FlagDefinition[string]{
		Name:        "target",
		ShortName:   "t",
		Description: "Device-mapper target registered by the module (overrides module.targetName)",
		Default:     "",
	}

	FlagWait = FlagDefinition[bool]{
		Name:        "wait",
		ShortName:   "w",
		Description: "Retry the presence checks while the module initializes",
		Default:     false,
	}

	FlagMinVersion = FlagDefinition[string]{
		Name:        "min",
		ShortName:   "",
		Description: "Fail unless the target version is at least this X.Y.Z version",
		Default:     "",
	}

	FlagLockTimeout = FlagDefinition[time.Duration]{
		Name:        "lock-timeout",
		ShortName:   "",
		Description: "How long to wait for another kmod process to release the module lock (overrides module.lockTimeout)",
		Default:     0,
	}
)

// FlagDefinition defines a command-line flag typed by T.
type FlagDefinition[T any] struct {
	Name        string
	ShortName   string
	Description string
	Default     T
}

// SetVarP sets up the persistent flag and exits on error.
func (fp *FlagDefinition[T]) SetVarP(cmd *cobra.Command, p *T) {
	if err := fp.varP(cmd, p); err != nil {
		doctor.CheckErr(context.Background(), err, fmt.Sprintf("failed to set flag %s", fp.Name))
	}
}

// SetVar sets up the non-persistent flag and exits on error.
func (fp *FlagDefinition[T]) SetVar(cmd *cobra.Command, p *T) {
	if err := fp.varNP(cmd, p); err != nil {
		doctor.CheckErr(context.Background(), err, fmt.Sprintf("failed to set flag %s", fp.Name))
	}
}

func (fp *FlagDefinition[T]) varP(cmd *cobra.Command, p *T) error {
	if cmd == nil {
		return errorx.IllegalArgument.New("command for flag %s is nil", fp.Name)
	}

	return fp.setFlagVar(cmd.PersistentFlags(), p)
}

func (fp *FlagDefinition[T]) varNP(cmd *cobra.Command, p *T) error {
	if cmd == nil {
		return errorx.IllegalArgument.New("command for flag %s is nil", fp.Name)
	}

	return fp.setFlagVar(cmd.Flags(), p)
}

// setFlagVar registers the flag on the given flag set, bound to p.
func (fp *FlagDefinition[T]) setFlagVar(flags *pflag.FlagSet, p *T) error {
	if p == nil {
		return errorx.IllegalArgument.New("pointer for flag %s is nil", fp.Name)
	}

	switch ptr := any(p).(type) {
	case *string:
		flags.StringVarP(ptr, fp.Name, fp.ShortName, any(fp.Default).(string), fp.Description)
	case *bool:
		flags.BoolVarP(ptr, fp.Name, fp.ShortName, any(fp.Default).(bool), fp.Description)
	case *int:
		flags.IntVarP(ptr, fp.Name, fp.ShortName, any(fp.Default).(int), fp.Description)
	case *time.Duration:
		flags.DurationVarP(ptr, fp.Name, fp.ShortName, any(fp.Default).(time.Duration), fp.Description)
	default:
		return errorx.IllegalArgument.New("unsupported flag type: %T", p)
	}

	return nil
}
