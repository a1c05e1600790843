package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default game configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Grid: PacmanGrid{
			Size:             20,
			ExtraWallsFactor: 3,
		},
		Speed: PacmanSpeed{
			Player:      0.8,
			GhostNormal: 0.5,
			GhostScared: 0.4,
		},
		Ghosts: PacmanGhosts{
			MoveDelay: 10,
		},
		Gameplay: PacmanGameplay{
			Lives:         3,
			PowerUps:      4,
			PowerDuration: 300, // 5 seconds at 60fps
			DotPoints:     10,
			PowerPoints:   50,
			GhostPoints:   200,
		},
		Controls: PacmanControls{
			HoldTicks: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman", "pacman_endless":
		return defaultPacmanYAML
	default:
		return nil
	}
}
