// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/automa-saga/logx"
	"github.com/hashgraph/solo-kmod/cmd/kmod/commands/common"
	"github.com/hashgraph/solo-kmod/cmd/kmod/commands/module"
	"github.com/hashgraph/solo-kmod/cmd/kmod/commands/version"
	"github.com/hashgraph/solo-kmod/internal/config"
	"github.com/hashgraph/solo-kmod/internal/doctor"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
)

// examples:
// kmod module start
// kmod module running --wait
// kmod --module dm_thin_pool --target thin-pool module status -o json
// kmod module target-version --min 6.2.0

// rootCmd represents the base command when called without any subcommands
var (
	// Used for flags.
	flagConfig       string
	flagVersion      bool
	flagOutputFormat string
	flagModule       string
	flagTarget       string

	rootCmd = &cobra.Command{
		Use:           "kmod",
		Short:         "Manage the kernel module behind a device-mapper target",
		Long:          "kmod - load, unload and inspect a kernel module (kvdo by default) and the device-mapper target it provides",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagVersion {
				return version.PrintVersion(cmd, flagOutputFormat)
			}

			return cmd.Help()
		},
	}
)

func init() {
	common.FlagConfig.SetVarP(rootCmd, &flagConfig)
	common.FlagModule.SetVarP(rootCmd, &flagModule)
	common.FlagTarget.SetVarP(rootCmd, &flagTarget)

	// support '--version', '-v' to show version information
	rootCmd.PersistentFlags().BoolVarP(&flagVersion, "version", "v", false, "Show version")
	common.FlagOutput.SetVarP(rootCmd, &flagOutputFormat)

	// disable command sorting to keep the order of commands as added
	cobra.EnableCommandSorting = false

	// add subcommands
	rootCmd.AddCommand(module.GetCmd())
	rootCmd.AddCommand(version.GetCmd())
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	if ctx == nil {
		return errorx.IllegalArgument.New("context is required")
	}

	cobra.OnInitialize(func() {
		initConfig(ctx)
	})

	// execute the root command
	_, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		return errorx.Decorate(err, "failed to execute command")
	}

	return nil
}

// loadConfig reads the configuration file and environment, applies command line overrides
// and reinitializes logging.
func loadConfig() error {
	err := config.Initialize(flagConfig)
	if err != nil {
		return err
	}

	err = config.OverrideModuleConfig(flagModule, flagTarget)
	if err != nil {
		return err
	}

	return logx.Initialize(config.Get().Log)
}

func initConfig(ctx context.Context) {
	if err := loadConfig(); err != nil {
		doctor.CheckErr(ctx, err)
	}
}
