// SPDX-License-Identifier: Apache-2.0

package module

import (
	"github.com/Masterminds/semver/v3"
	"github.com/automa-saga/logx"
	"github.com/hashgraph/solo-kmod/cmd/kmod/commands/common"
	"github.com/hashgraph/solo-kmod/pkg/exit"
	"github.com/hashgraph/solo-kmod/pkg/kernel"
	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"
)

type targetVersionReport struct {
	Target  string              `yaml:"Target" json:"Target"`
	Version kernel.VersionTuple `yaml:"Version" json:"Version"`
}

var targetVersionCmd = &cobra.Command{
	Use:   "target-version",
	Short: "Show the device-mapper target version",
	Long: "Show the version of the device-mapper target registered by the module as reported by dmsetup.\n" +
		"An absent target reports [0, 0, 0]. With --min, exits with status 4 when the target is older",
	RunE: func(cmd *cobra.Command, args []string) error {
		var minVersion *semver.Version
		if flagMinVersion != "" {
			v, err := semver.NewVersion(flagMinVersion)
			if err != nil {
				return errorx.IllegalArgument.Wrap(err, "invalid minimum version %q", flagMinVersion).
					WithProperty(errorx.PropertyPayload(), common.FlagMinVersion.Name)
			}
			minVersion = v
		}

		m, cfg, err := prepareManager()
		if err != nil {
			return err
		}

		tv := m.TargetVersion(cmd.Context())
		err = common.Render(cmd.OutOrStdout(), targetVersionReport{Target: cfg.TargetName, Version: tv}, flagOutputFormat)
		if err != nil {
			return err
		}

		if minVersion != nil && tv.Semver().LessThan(minVersion) {
			logx.As().Warn().
				Str("target", cfg.TargetName).
				Str("version", tv.String()).
				Str("minimum", minVersion.String()).
				Msg("Device-mapper target is older than required")
			exitWith(exit.BelowMinimumVersion)
		}

		return nil
	},
}

func init() {
	common.FlagMinVersion.SetVar(targetVersionCmd, &flagMinVersion)
}
