package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BlockfallConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultBlockfallConfig(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  width: 12\nspecials:\n  laser_probability: 0\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadBlockfall(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height, "missing keys keep defaults")
	assert.Zero(t, cfg.Specials.LaserProbability)
	assert.Equal(t, 0.25, cfg.Specials.BombProbability)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadBlockfall(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [oops"), 0o644))
	cfg, err := LoadBlockfall(bad)
	assert.ErrorContains(t, err, "failed to parse config")
	assert.Equal(t, DefaultBlockfallConfig(), cfg)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	// nothing on disk: embedded defaults
	cfg, err := LoadBlockfall("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBlockfallConfig(), cfg)

	// local configs directory
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "blockfall.yaml"), []byte("board:\n  height: 22\n"), 0o644))
	cfg, err = LoadBlockfall("")
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.Board.Height)

	// user directory wins over local
	userDir := filepath.Join(home, ".blockfall", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "blockfall.yaml"), []byte("board:\n  height: 24\n"), 0o644))
	cfg, err = LoadBlockfall("")
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Board.Height)

	// a malformed user file is skipped
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "blockfall.yaml"), []byte("board: ["), 0o644))
	cfg, err = LoadBlockfall("")
	require.NoError(t, err)
	assert.Equal(t, 22, cfg.Board.Height)
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(name)
		require.NoError(t, err)
		assert.Equal(t, DifficultyPreset(name), p)
	}

	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.True(t, IsFixedPreset(p))

	_, err = ParsePreset("insane")
	assert.Error(t, err)
}

func TestApplyBlockfallPreset(t *testing.T) {
	cfg := DefaultBlockfallConfig()
	ApplyBlockfallPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 0.7, cfg.Difficulty.InitialLevel)
	assert.Equal(t, 2, cfg.Specials.BombTimer)

	cfg = DefaultBlockfallConfig()
	ApplyBlockfallPreset(&cfg, DifficultyEasy)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Zero(t, cfg.Difficulty.InitialLevel)
	assert.Equal(t, 4, cfg.Specials.BombTimer)

	ApplyBlockfallPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)
	assert.Zero(t, cfg.Difficulty.InitialLevel)
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultBlockfallConfig()
	cfg.Board.Width = 8
	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "drop_interval_ms: 1000")

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	loaded, err := LoadBlockfall(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
