package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPawLibrary, cfg.PawLibrary)
	assert.Equal(t, DefaultPawSetting, cfg.PawSetting)
	assert.Equal(t, DefaultDistanceAbove, cfg.DistanceAbove)
	assert.False(t, cfg.Verbose)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vasptools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paw_library: /opt/paw\npaw_setting: 5\ndistance_above: 2.2\n"), 0644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/opt/paw", cfg.PawLibrary)
	assert.Equal(t, 5, cfg.PawSetting)
	assert.Equal(t, 2.2, cfg.DistanceAbove)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vasptools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paw_library: /opt/paw\n"), 0644))
	t.Setenv("VASPTOOLS_PAW_LIBRARY", "/env/paw")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/env/paw", cfg.PawLibrary)
}

func TestLoadFlagsWinOverEverything(t *testing.T) {
	t.Setenv("VASPTOOLS_PAW_LIBRARY", "/env/paw")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("library", "", "")
	flags.Int("setting", 1, "")
	flags.Float64("distance", 1.8, "")
	require.NoError(t, flags.Parse([]string{"--library", "/flag/paw", "--distance", "2.5"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "/flag/paw", cfg.PawLibrary)
	assert.Equal(t, 2.5, cfg.DistanceAbove)
	//unchanged flags do not override
	assert.Equal(t, DefaultPawSetting, cfg.PawSetting)
}
