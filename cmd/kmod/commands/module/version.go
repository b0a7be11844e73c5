// SPDX-License-Identifier: Apache-2.0

package module

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the module version lines",
	Long:  "Show the module name followed by the version lines reported by modinfo",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := prepareManager()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Version(cmd.Context()))
		return err
	},
}
