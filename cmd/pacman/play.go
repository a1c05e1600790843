package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagMode       string
	flagConfig     string
	flagDifficulty string
	flagHelpBar    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing Pac-Man.

Controls:
  Arrows/WASD/hjkl - Move
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Modes:
  classic - One maze, three lives
  endless - A new maze every time the dots run out

Difficulty options:
  easy   - Five lives, slower ghosts
  normal - Config values as-is
  hard   - Two lives, faster ghosts, shorter power-ups
  fixed  - No speed progression

Examples:
  pacman play
  pacman play --mode endless
  pacman play --difficulty hard
  pacman play --seed 42 --config ./my-pacman.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "classic", "Game mode: classic, endless")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagHelpBar, "help-bar", false, "Show the key help bar below the maze")
}

// configurable is implemented by games that accept the YAML game config.
type configurable interface {
	Configure(cfg config.PacmanConfig) error
}

// gameIDForMode maps a --mode value to a registered game ID.
func gameIDForMode(mode string) (string, error) {
	switch mode {
	case "", "classic":
		return "pacman", nil
	case "endless":
		return "pacman_endless", nil
	default:
		return "", fmt.Errorf("unknown mode %q (want classic or endless)", mode)
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameID, err := gameIDForMode(flagMode)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return playGame(gameID, preset, store, runtimeConfig())
}

// openStore opens the score database. Play continues without it on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// playGame loads the game config, applies the preset and runs one game
// session until the player quits.
func playGame(gameID string, preset config.DifficultyPreset, store *storage.Store, cfg core.RuntimeConfig) error {
	gameCfg, err := config.LoadPacman(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPacmanPreset(&gameCfg, preset)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if c, ok := game.(configurable); ok {
		if err := c.Configure(gameCfg); err != nil {
			return fmt.Errorf("configure %s: %w", gameID, err)
		}
	}

	logger.Info("starting game",
		"game", gameID,
		"difficulty", preset,
		"fps", cfg.TickRate,
		"seed", cfg.Seed,
	)

	opts := tui.Options{
		Logger:    logger,
		HoldTicks: gameCfg.Controls.HoldTicks,
		ShowHelp:  flagHelpBar,
	}
	if err := tui.Run(game, store, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
