package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/objectpool/pkg/config"
	"github.com/ajitpratap0/objectpool/pkg/pool"
	"github.com/ajitpratap0/objectpool/pkg/poolerrors"
	"github.com/ajitpratap0/objectpool/pkg/testutil"
)

const checkConfig = `
defaults:
  precache_count: 1
pools:
  Frame:
    precache_count: 10
    max_alive_count: 5
  plain:
    max_alive_count: 0
`

func TestRunCheck_WritesNormalizedConfig(t *testing.T) {
	path := testutil.WriteFile(t, "pools.yaml", checkConfig)
	out := filepath.Join(t.TempDir(), "normalized.yaml")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, runCheck(cmd, path, out))
	assert.Regexp(t, `frame\s+10\s+5`, buf.String())

	reg, err := config.LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"frame", "plain"}, reg.Names())
	assert.Equal(t, pool.Config{PrecacheCount: 10, MaxAlive: pool.Bounded(5)}, reg.Lookup("frame"))
	assert.Equal(t, pool.Config{MaxAlive: pool.Unbounded()}, reg.Lookup("plain"))
	assert.Equal(t, pool.Config{PrecacheCount: 1, MaxAlive: pool.Unbounded()}, reg.Defaults())
}

func TestRunCheck_WithoutWrite(t *testing.T) {
	path := testutil.WriteFile(t, "pools.yaml", checkConfig)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, runCheck(cmd, path, ""))
	assert.Contains(t, buf.String(), "(defaults)")
}

func TestRunCheck_InvalidConfig(t *testing.T) {
	path := testutil.WriteFile(t, "pools.yaml", "pools:\n  frame:\n    precache_count: -1\n")
	out := filepath.Join(t.TempDir(), "normalized.yaml")

	err := runCheck(&cobra.Command{}, path, out)
	require.Error(t, err)
	assert.True(t, poolerrors.IsType(err, poolerrors.ErrorTypeValidation))
	assert.NoFileExists(t, out)
}
