// SPDX-License-Identifier: Apache-2.0

package version

import (
	"testing"

	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMode(t *testing.T) {
	testCases := []struct {
		name      string
		buildMode string
		release   bool
		expected  string
	}{
		{name: "exact match", buildMode: "release", release: true, expected: "release"},
		{name: "surrounding whitespace", buildMode: "  release\n", release: true, expected: "release"},
		{name: "empty", buildMode: "", expected: "dev"},
		{name: "case sensitive", buildMode: "RELEASE", expected: "dev"},
		{name: "release candidate", buildMode: "release-candidate", expected: "dev"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			original := buildMode
			buildMode = tc.buildMode
			defer func() { buildMode = original }()

			require.Equal(t, tc.release, IsReleaseBuild())
			require.Equal(t, tc.expected, BuildMode())
		})
	}
}

func TestEmbeddedValues(t *testing.T) {
	assert.NotEmpty(t, Number())
	assert.NotContains(t, Number(), "\n")
	assert.NotContains(t, Commit(), "\n")
	assert.Equal(t, Number(), Get().Number)
}

func TestInfo_Format(t *testing.T) {
	info := Info{Number: "0.1.0", Commit: "abc123", BuildMode: "dev", GoVersion: "go1.25"}

	out, err := info.Format(FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "version: 0.1.0\ncommit: abc123\nbuildMode: dev\ngo: go1.25\n", out)

	out, err = info.Format(FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, `{"version":"0.1.0","commit":"abc123","buildMode":"dev","go":"go1.25"}`, out)

	_, err = info.Format("toml")
	require.Error(t, err)
	assert.True(t, errorx.IsOfType(err, errorx.IllegalFormat))
}
