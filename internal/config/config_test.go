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
	cfg := DefaultPacmanConfig()
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("pacman"), &cfg))
	assert.Equal(t, DefaultPacmanConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPacmanCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nghosts:\n  move_delay: 4\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadPacman(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Gameplay.Lives)
	assert.Equal(t, 4, cfg.Ghosts.MoveDelay)
	// Untouched keys keep their defaults
	assert.Equal(t, 20, cfg.Grid.Size)
	assert.Equal(t, 300, cfg.Gameplay.PowerDuration)
}

func TestLoadPacmanErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPacman(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("grid: [1, 2"), 0o600))
		_, err := LoadPacman(path)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("grid:\n  size: 2\n"), 0o600))
		_, err := LoadPacman(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadPacmanFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadPacman("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPacmanConfig(), cfg)
}

func TestLoadPacmanLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "pacman.yaml"),
		[]byte("grid:\n  size: 12\n"), 0o600))

	cfg, err := LoadPacman("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Grid.Size)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PacmanConfig)
	}{
		{"tiny grid", func(c *PacmanConfig) { c.Grid.Size = 4 }},
		{"negative walls", func(c *PacmanConfig) { c.Grid.ExtraWallsFactor = -1 }},
		{"zero player speed", func(c *PacmanConfig) { c.Speed.Player = 0 }},
		{"zero scared speed", func(c *PacmanConfig) { c.Speed.GhostScared = 0 }},
		{"zero move delay", func(c *PacmanConfig) { c.Ghosts.MoveDelay = 0 }},
		{"no lives", func(c *PacmanConfig) { c.Gameplay.Lives = 0 }},
		{"negative power-ups", func(c *PacmanConfig) { c.Gameplay.PowerUps = -1 }},
		{"negative points", func(c *PacmanConfig) { c.Gameplay.GhostPoints = -200 }},
		{"negative hold", func(c *PacmanConfig) { c.Controls.HoldTicks = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestPresets(t *testing.T) {
	t.Run("easy", func(t *testing.T) {
		cfg := DefaultPacmanConfig()
		ApplyPacmanPreset(&cfg, DifficultyEasy)
		assert.Equal(t, 5, cfg.Gameplay.Lives)
		assert.Less(t, cfg.Speed.GhostScared, cfg.Speed.GhostNormal)
	})

	t.Run("normal keeps defaults", func(t *testing.T) {
		cfg := DefaultPacmanConfig()
		ApplyPacmanPreset(&cfg, DifficultyNormal)
		assert.Equal(t, DefaultPacmanConfig(), cfg)
	})

	t.Run("hard", func(t *testing.T) {
		cfg := DefaultPacmanConfig()
		ApplyPacmanPreset(&cfg, DifficultyHard)
		assert.Equal(t, 2, cfg.Gameplay.Lives)
		assert.Equal(t, 200, cfg.Gameplay.PowerDuration)
		assert.Less(t, cfg.Speed.GhostScared, cfg.Speed.GhostNormal)
	})

	t.Run("fixed disables progression", func(t *testing.T) {
		cfg := DefaultPacmanConfig()
		cfg.Difficulty.Enabled = true
		ApplyPacmanPreset(&cfg, DifficultyFixed)
		assert.False(t, cfg.Difficulty.Enabled)
	})
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDifficultyManager(t *testing.T) {
	t.Run("disabled returns base speed", func(t *testing.T) {
		dm := NewDifficultyManager(DefaultPacmanConfig().Difficulty)
		assert.False(t, dm.IsEnabled())
		assert.Equal(t, 0.5, dm.Speed(0.5, 100000, 100000))
	})

	t.Run("score progression", func(t *testing.T) {
		dm := NewDifficultyManager(DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
		})
		assert.InDelta(t, 0.0, dm.Level(0, 0), 1e-9)
		assert.InDelta(t, 0.5, dm.Level(500, 0), 1e-9)
		assert.InDelta(t, 1.0, dm.Level(5000, 0), 1e-9)
		assert.InDelta(t, 0.75, dm.Speed(0.5, 500, 0), 1e-9)
	})

	t.Run("time progression from initial level", func(t *testing.T) {
		dm := NewDifficultyManager(DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.5,
			Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		})
		assert.InDelta(t, 0.5, dm.Level(0, 0), 1e-9)
		assert.InDelta(t, 0.75, dm.Level(0, 50), 1e-9)
	})
}
