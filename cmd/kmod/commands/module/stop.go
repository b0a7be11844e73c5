// SPDX-License-Identifier: Apache-2.0

package module

import (
	"context"

	"github.com/hashgraph/solo-kmod/cmd/kmod/commands/common"
	"github.com/hashgraph/solo-kmod/pkg/kernel"
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Unload the kernel module",
	Long:  "Unload the kernel module with modprobe -r. Fails while the module is in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, "stop", func(ctx context.Context, m kernel.Lifecycle) error {
			return m.Stop(ctx)
		})
	},
}

func init() {
	common.FlagLockTimeout.SetVar(stopCmd, &flagLockTimeout)
}
