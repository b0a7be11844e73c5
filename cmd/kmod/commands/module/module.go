// SPDX-License-Identifier: Apache-2.0

package module

import (
	"context"
	"time"

	"github.com/automa-saga/logx"
	"github.com/hashgraph/solo-kmod/cmd/kmod/commands/common"
	"github.com/hashgraph/solo-kmod/internal/config"
	"github.com/hashgraph/solo-kmod/pkg/exit"
	"github.com/hashgraph/solo-kmod/pkg/kernel"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
)

var (
	flagOutputFormat string
	flagWait         bool
	flagMinVersion   string
	flagLockTimeout  time.Duration

	moduleCmd = &cobra.Command{
		Use:   "module",
		Short: "Manage a kernel module and its device-mapper target",
		Long:  "Load, unload and inspect a kernel module (kvdo by default) and the device-mapper target it registers",
		// errors are rendered by doctor, and usage must not pollute command output
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// newManager builds the lifecycle of the configured module. Tests replace it.
	newManager = func(cfg config.ModuleConfig) (kernel.Lifecycle, error) {
		return cfg.NewManager()
	}

	// exitWith ends the process with a status that carries an answer rather than an error.
	exitWith = func(code exit.Code) {
		code.TerminateProcess()
	}
)

func init() {
	common.FlagOutput.SetVarP(moduleCmd, &flagOutputFormat)

	moduleCmd.AddCommand(startCmd, stopCmd, runningCmd, statusCmd, versionCmd, targetVersionCmd)
}

func GetCmd() *cobra.Command {
	return moduleCmd
}

// prepareManager validates the active configuration and builds the manager for it.
func prepareManager() (kernel.Lifecycle, config.ModuleConfig, error) {
	cfg := config.Get().Module
	if err := cfg.Validate(); err != nil {
		return nil, cfg, errorx.Decorate(err, "invalid configuration")
	}

	m, err := newManager(cfg)
	if err != nil {
		return nil, cfg, err
	}

	return m, cfg, nil
}

// mutate runs op on the module while holding the module lock.
func mutate(cmd *cobra.Command, op string, fn func(ctx context.Context, m kernel.Lifecycle) error) error {
	m, cfg, err := prepareManager()
	if err != nil {
		return err
	}

	if flagLockTimeout > 0 {
		cfg.LockTimeout = flagLockTimeout
	}

	logx.As().Debug().
		Str("operation", op).
		Str("manager", m.String()).
		Str("lockPath", cfg.LockFile).
		Msg("Running module operation")

	return common.WithModuleLock(cmd.Context(), cfg, func() error {
		return fn(cmd.Context(), m)
	})
}
