// SPDX-License-Identifier: Apache-2.0

package module

import (
	"fmt"

	"github.com/automa-saga/logx"
	"github.com/hashgraph/solo-kmod/cmd/kmod/commands/common"
	"github.com/hashgraph/solo-kmod/pkg/exit"
	"github.com/spf13/cobra"
)

var runningCmd = &cobra.Command{
	Use:   "running",
	Short: "Check whether the module is loaded and its target registered",
	Long: "Print true when the kernel module is loaded and its device-mapper target is registered, false otherwise.\n" +
		"Exits with status 3 when it is not running",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := prepareManager()
		if err != nil {
			return err
		}

		loaded := m.Running(cmd.Context(), flagWait)
		logx.As().Debug().Str("module", m.Name()).Bool("wait", flagWait).Bool("running", loaded).Msg("Checked module presence")

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), loaded)
		if !loaded {
			exitWith(exit.ModuleNotRunning)
		}

		return nil
	},
}

func init() {
	common.FlagWait.SetVar(runningCmd, &flagWait)
}
