// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashgraph/solo-kmod/internal/config"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	orig := config.Get()
	t.Cleanup(func() {
		flagConfig, flagModule, flagTarget = "", "", ""
		_ = config.Set(&orig)
	})
}

func TestLoadConfig_Overrides(t *testing.T) {
	resetFlags(t)

	flagModule = "dm_thin_pool"
	flagTarget = "thin-pool"
	require.NoError(t, loadConfig())

	assert.Equal(t, "dm_thin_pool", config.Get().Module.Name)
	assert.Equal(t, "thin-pool", config.Get().Module.TargetName)
}

func TestLoadConfig_File(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "kmod.yaml")
	require.NoError(t, os.WriteFile(path, []byte("module:\n  name: dm_crypt\n  targetName: crypt\n"), 0o600))

	flagConfig = path
	flagTarget = "crypt"
	require.NoError(t, loadConfig())
	assert.Equal(t, "dm_crypt", config.Get().Module.Name)
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	resetFlags(t)

	flagModule = "kvdo && reboot"
	err := loadConfig()
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, errorx.IllegalArgument))
}

func TestExecute_RequiresContext(t *testing.T) {
	var ctx context.Context
	err := Execute(ctx)
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, errorx.IllegalArgument))
}

func TestRootCmd_Commands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "module")
	assert.Contains(t, names, "version")

	moduleCmd, _, err := rootCmd.Find([]string{"module", "target-version"})
	require.NoError(t, err)
	assert.Equal(t, "target-version", moduleCmd.Name())
}

func TestExecute_Version(t *testing.T) {
	resetFlags(t)

	rootCmd.SetArgs([]string{"version", "-o", "json"})
	require.NoError(t, Execute(context.Background()))
}
