package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestImportThenReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	state := []string{"--state-backend", "file", "--state-path", path}

	out := execute(t, append([]string{"import", "--text", "https://instagram.com/sam\nana@example.com"}, state...)...)
	assert.Equal(t, "imported 2 leads\n", out)

	out = execute(t, append([]string{"stats"}, state...)...)
	assert.Regexp(t, `total leads\s+2\n`, out)
	assert.Contains(t, out, "instagram")

	out = execute(t, append([]string{"profiles"}, state...)...)
	assert.Contains(t, out, "NAME")
}

func TestRenderRequiresProfile(t *testing.T) {
	rootCmd.SetArgs([]string{"render", "--state-path", filepath.Join(t.TempDir(), "s.json")})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	assert.Error(t, rootCmd.Execute())
}
