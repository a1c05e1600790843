// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// PacmanConfig contains all configuration for the maze chase game.
type PacmanConfig struct {
	Grid       PacmanGrid       `yaml:"grid"`
	Speed      PacmanSpeed      `yaml:"speed"`
	Ghosts     PacmanGhosts     `yaml:"ghosts"`
	Gameplay   PacmanGameplay   `yaml:"gameplay"`
	Controls   PacmanControls   `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanGrid defines the maze dimensions.
type PacmanGrid struct {
	Size             int `yaml:"size"`               // Side of the square grid, border included
	ExtraWallsFactor int `yaml:"extra_walls_factor"` // Random interior walls = factor * size
}

// PacmanSpeed defines movement speeds in cells per movement opportunity.
// Scared ghosts are slower than hunting ones.
type PacmanSpeed struct {
	Player      float64 `yaml:"player"`
	GhostNormal float64 `yaml:"ghost_normal"`
	GhostScared float64 `yaml:"ghost_scared"`
}

// PacmanGhosts defines adversary behavior.
type PacmanGhosts struct {
	MoveDelay int `yaml:"move_delay"` // Ticks between ghost decisions
}

// PacmanGameplay defines scoring, lives and power-up parameters.
type PacmanGameplay struct {
	Lives         int `yaml:"lives"`
	PowerUps      int `yaml:"power_ups"`
	PowerDuration int `yaml:"power_duration"` // Ticks
	DotPoints     int `yaml:"dot_points"`
	PowerPoints   int `yaml:"power_points"`
	GhostPoints   int `yaml:"ghost_points"`
}

// PacmanControls defines terminal input handling.
type PacmanControls struct {
	// HoldTicks is how long a direction stays held after a key press.
	// Terminals report presses only, so auto-repeat refreshes the hold.
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate checks that the configuration describes a playable game.
func (c PacmanConfig) Validate() error {
	switch {
	case c.Grid.Size < 5:
		return fmt.Errorf("%w: grid.size must be at least 5, got %d", ErrInvalidConfig, c.Grid.Size)
	case c.Grid.ExtraWallsFactor < 0:
		return fmt.Errorf("%w: grid.extra_walls_factor must not be negative", ErrInvalidConfig)
	case c.Speed.Player <= 0 || c.Speed.GhostNormal <= 0 || c.Speed.GhostScared <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	case c.Ghosts.MoveDelay <= 0:
		return fmt.Errorf("%w: ghosts.move_delay must be positive, got %d", ErrInvalidConfig, c.Ghosts.MoveDelay)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: gameplay.lives must be positive, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	case c.Gameplay.PowerUps < 0 || c.Gameplay.PowerDuration < 0:
		return fmt.Errorf("%w: power-up settings must not be negative", ErrInvalidConfig)
	case c.Gameplay.DotPoints < 0 || c.Gameplay.PowerPoints < 0 || c.Gameplay.GhostPoints < 0:
		return fmt.Errorf("%w: points must not be negative", ErrInvalidConfig)
	case c.Controls.HoldTicks < 0:
		return fmt.Errorf("%w: controls.hold_ticks must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ghost speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
