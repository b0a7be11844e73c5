// SPDX-License-Identifier: Apache-2.0

package version

import (
	"github.com/hashgraph/solo-kmod/internal/version"
	"github.com/spf13/cobra"
)

var (
	flagOutputFormat string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Long:  "Show the current version of kmod",
		RunE: func(cmd *cobra.Command, args []string) error {
			return PrintVersion(cmd, flagOutputFormat)
		},
	}
)

func init() {
	versionCmd.PersistentFlags().StringVarP(&flagOutputFormat, "output", "o", "yaml", "Output format: yaml|json")
}

func GetCmd() *cobra.Command {
	return versionCmd
}

func PrintVersion(cmd *cobra.Command, format string) error {
	output, err := version.Get().Format(format)
	if err != nil {
		return err
	}

	cmd.Println(output)
	return nil
}
