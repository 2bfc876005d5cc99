package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsdgo/dsdgo/core"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	assert.Nil(t, f.Frames.DMR)

	f2, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Nil(t, f2.Frames.DMR)
}

func TestApplyToOverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dsdgo.yaml")
	yaml := `
frames:
  dmr: false
modulation:
  threshold: 30
ssize: 48
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	f, err := Load(path)
	require.NoError(t, err)

	o := core.NewOpts()
	assert.True(t, o.FrameDMR)
	f.ApplyTo(o)

	assert.False(t, o.FrameDMR)
	assert.True(t, o.FrameDStar, "unset fields must keep the Opts default")
	assert.Equal(t, 30, o.ModThreshold)
	assert.Equal(t, 48, o.SSize)
}
