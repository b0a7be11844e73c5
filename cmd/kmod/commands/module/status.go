// SPDX-License-Identifier: Apache-2.0

package module

import (
	"github.com/hashgraph/solo-kmod/cmd/kmod/commands/common"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the module status",
	Long:  "Show the module name, whether it is running and the version information reported by modinfo",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := prepareManager()
		if err != nil {
			return err
		}

		report, err := m.Status(cmd.Context())
		if err != nil {
			return err
		}

		return common.Render(cmd.OutOrStdout(), report, flagOutputFormat)
	},
}
