package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tablut/meta"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Load(nil))
		require.Equal(t, meta.ModePlay, c.GetString(ConfigMode))
		require.Equal(t, meta.MOVE_LIMIT, c.GetInt(ConfigMoveLimit))
		require.Equal(t, meta.PlayerManual, c.GetString(ConfigAttackers))
		require.Equal(t, meta.PlayerAI, c.GetString(ConfigDefenders))
		require.Equal(t, uint64(meta.SEED), c.GetUint64(ConfigSeed))
		require.False(t, c.GetBool(ConfigDebug))
	})

	t.Run("flags", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Load([]string{"--mode", "experiment", "--depth=3", "--attackers", "random"}))
		require.Equal(t, meta.ModeExperiment, c.GetString(ConfigMode))
		require.Equal(t, 3, c.GetInt(ConfigDepth))
		require.Equal(t, meta.PlayerRandom, c.GetString(ConfigAttackers))
	})

	t.Run("environment overrides defaults but not flags", func(t *testing.T) {
		t.Setenv("TABLUT_MOVE_LIMIT", "30")
		t.Setenv("TABLUT_GAMES", "4")

		c := New()
		require.NoError(t, c.Load([]string{"--games", "2"}))
		require.Equal(t, 30, c.GetInt(ConfigMoveLimit))
		require.Equal(t, 2, c.GetInt(ConfigGames))
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tablut.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output-dir: out\ndefenders: random\n"), 0o644))

		c := New()
		require.NoError(t, c.Load([]string{"--config", path}))
		require.Equal(t, "out", c.GetString(ConfigOutputDir))
		require.Equal(t, meta.PlayerRandom, c.GetString(ConfigDefenders))
	})

	t.Run("missing config file", func(t *testing.T) {
		c := New()
		require.Error(t, c.Load([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))
	})

	t.Run("validation", func(t *testing.T) {
		require.ErrorIs(t, New().Load([]string{"--mode", "tournament"}), ErrBadMode)
		require.ErrorIs(t, New().Load([]string{"--defenders", "human"}), ErrBadPlayer)
		require.ErrorIs(t, New().Load([]string{"--depth", "-1"}), ErrBadValue)
	})

	t.Run("unknown flag", func(t *testing.T) {
		require.Error(t, New().Load([]string{"--colour", "white"}))
	})
}
