package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := DefaultConfig
	require.NoError(t, c.Validate())
	require.Equal(t, 300, c.Replay.MaxTurns)
}

func TestLoad(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"replay":{"goroutines":2},"log":{"level":"debug"}}`), 0644))

		c, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 2, c.Replay.Goroutines)
		require.Equal(t, DefaultConfig.Replay.MaxTurns, c.Replay.MaxTurns)
		require.Equal(t, "debug", c.Log.Level)
		require.Equal(t, ":8080", c.Server.Addr)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"log":{"level":"loud"}}`), 0644))

		_, err := Load(path)

		var invalid *InvalidConfig
		require.ErrorAs(t, err, &invalid)
		require.Contains(t, err.Error(), "loud")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"replay":`), 0644))

		_, err := Load(path)

		var invalid *InvalidConfig
		require.ErrorAs(t, err, &invalid)
	})
}

func TestValidate(t *testing.T) {
	c := DefaultConfig
	c.Replay.Goroutines = 0
	require.Error(t, c.Validate())

	c = DefaultConfig
	c.Server.Addr = ""
	require.Error(t, c.Validate())

	c = DefaultConfig
	c.Replay.MaxTurns = -1
	require.Error(t, c.Validate())
}

func TestSaveAndInit(t *testing.T) {
	// runs after the environment is restored
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	c, err := InitConfig()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig, *c)

	c.Server.Addr = ":9999"
	path, err := c.Save()
	require.NoError(t, err)
	require.FileExists(t, path)

	loaded, err := InitConfig()
	require.NoError(t, err)
	require.Equal(t, ":9999", loaded.Server.Addr)
}
