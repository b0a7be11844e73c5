// SPDX-License-Identifier: Apache-2.0

package module

import (
	"context"

	"github.com/hashgraph/solo-kmod/cmd/kmod/commands/common"
	"github.com/hashgraph/solo-kmod/pkg/kernel"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Load the kernel module",
	Long:  "Load the kernel module with modprobe. Loading a module that is already loaded succeeds",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, "start", func(ctx context.Context, m kernel.Lifecycle) error {
			return m.Start(ctx)
		})
	},
}

func init() {
	common.FlagLockTimeout.SetVar(startCmd, &flagLockTimeout)
}
