// SPDX-License-Identifier: Apache-2.0

package common

import (
	"bytes"
	"testing"

	"github.com/hashgraph/solo-kmod/pkg/kernel"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	report := &kernel.StatusReport{
		Name:               "kvdo",
		Loaded:             true,
		VersionInformation: map[string]any{"kvdo version": "6.2.3.114"},
	}

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, report, FormatYAML))
		assert.Equal(t, "Name: kvdo\nLoaded: true\nVersion information:\n    kvdo version: 6.2.3.114\n", buf.String())
	})

	t.Run("default is yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, report, ""))
		assert.Contains(t, buf.String(), "Loaded: true\n")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, report, "JSON"))
		assert.JSONEq(t, `{"Name":"kvdo","Loaded":true,"Version information":{"kvdo version":"6.2.3.114"}}`, buf.String())
	})

	t.Run("unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		err := Render(&buf, report, "xml")
		require.Error(t, err)
		assert.True(t, errorx.IsOfType(err, errorx.IllegalArgument))
		assert.Empty(t, buf.String())
	})
}
