package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{EnvRows, EnvCols, EnvWrapping, EnvSeed, EnvWalls, EnvPits, EnvBats, EnvArrows, EnvPlayers}

// clearEnv unsets every setting for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	s, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.NoError(t, s.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRows, "4")
	t.Setenv(EnvCols, "5")
	t.Setenv(EnvWrapping, "true")
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvWalls, "-1")
	t.Setenv(EnvPlayers, "2")

	s, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 4, s.Rows)
	assert.Equal(t, 5, s.Cols)
	assert.True(t, s.Wrapping)
	assert.Equal(t, int64(42), s.Seed)
	assert.True(t, s.Perfect())
	assert.True(t, s.TwoPlayers())
}

func TestFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "game.env")
	require.NoError(t, os.WriteFile(path, []byte("WUMPUS_PITS=25\nWUMPUS_BATS=40\nWUMPUS_ARROWS=7\n"), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{EnvPits, EnvBats, EnvArrows} {
			os.Unsetenv(k)
		}
	})

	s, err := FromEnv(path)
	require.NoError(t, err)
	assert.Equal(t, 25, s.PitPercent)
	assert.Equal(t, 40, s.BatPercent)
	assert.Equal(t, 7, s.Arrows)
}

func TestFromEnvMalformed(t *testing.T) {
	cases := map[string]string{
		EnvRows:     "six",
		EnvWrapping: "sometimes",
		EnvSeed:     "1.5",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestRegisterFlags(t *testing.T) {
	s := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	s.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-rows", "3", "-wrapping", "-walls", "2", "-players", "2", "-seed", "9"}))

	assert.Equal(t, 3, s.Rows)
	assert.Equal(t, 8, s.Cols)
	assert.True(t, s.Wrapping)
	assert.Equal(t, int64(9), s.Seed)
	assert.True(t, s.TwoPlayers())

	cfg := s.MazeConfig()
	assert.False(t, cfg.Perfect)
	assert.Equal(t, 2, cfg.RemainingWalls)
	assert.Equal(t, 3, cfg.Rows)
	assert.Equal(t, int64(9), cfg.Seed)
}

func TestMazeConfigPerfect(t *testing.T) {
	s := Default()
	s.Walls = -1
	cfg := s.MazeConfig()
	assert.True(t, cfg.Perfect)
	assert.Zero(t, cfg.RemainingWalls)
}

func TestValidate(t *testing.T) {
	s := Default()
	s.Arrows = -1
	assert.EqualError(t, s.Validate(), "number of arrows cannot be negative")

	s = Default()
	s.Players = 3
	assert.Error(t, s.Validate())

	s.Players = 0
	assert.Error(t, s.Validate())
}
