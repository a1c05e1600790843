// Package pacman implements a single-screen maze chase: the player eats dots
// while three ghosts hunt it, and power-ups briefly turn the ghosts into prey.
package pacman

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic plays one maze until the last life is lost.
	ModeClassic Mode = "classic"
	// ModeEndless builds a new maze whenever every dot has been eaten.
	ModeEndless Mode = "endless"
)

// Game is the simulation controller. It exclusively owns the maze, the items,
// every entity and the score state; renderers only read through accessors.
type Game struct {
	mode       Mode
	cfg        config.PacmanConfig
	difficulty *config.DifficultyManager
	logger     *log.Logger
	rng        *rand.Rand
	tick       uint64

	maze   *Maze
	items  *Items
	player *Entity
	ghosts []*Entity

	score      int
	lives      int
	level      int
	powerTicks int // Remaining empowered ticks
	moveTimer  int // Ticks since the last ghost decision

	over   bool
	paused bool

	events []Event

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a classic mode game with the default configuration.
func New() *Game {
	return NewWithConfig(ModeClassic, config.DefaultPacmanConfig())
}

// NewEndless creates an endless mode game with the default configuration.
func NewEndless() *Game {
	return NewWithConfig(ModeEndless, config.DefaultPacmanConfig())
}

// NewWithConfig creates a game in the given mode.
func NewWithConfig(mode Mode, cfg config.PacmanConfig) *Game {
	return &Game{
		mode:       mode,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     log.New(io.Discard),
	}
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
	registry.Register("pacman_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "pacman_endless"
	}
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Pac-Man (Endless)"
	}
	return "Pac-Man"
}

// Configure replaces the game configuration. It takes effect on the next Reset.
func (g *Game) Configure(cfg config.PacmanConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	return nil
}

// Config returns the active configuration.
func (g *Game) Config() config.PacmanConfig {
	return g.cfg
}

// SetLogger sets the logger used for gameplay events. Nil discards them.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Reset starts a new episode: new maze, full dots, new power-ups, fresh
// placement, score 0 and full lives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.over = false
	g.paused = false
	g.events = g.events[:0]
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.buildBoard()
	g.logger.Info("episode started",
		"game", g.ID(),
		"seed", cfg.Seed,
		"dots", g.items.DotCount(),
	)
}

// buildBoard generates the maze and items and places every entity.
// Score and lives are left alone.
func (g *Game) buildBoard() {
	size := g.cfg.Grid.Size
	g.maze = GenerateMaze(g.rng, size, g.cfg.Grid.ExtraWallsFactor*size)
	g.items = NewItems(g.rng, g.maze, g.cfg.Gameplay.PowerUps)
	g.powerTicks = 0
	g.moveTimer = 0

	g.player = NewPlayer(g.findEmptyCell(), g.cfg.Speed.Player)
	g.ghosts = make([]*Entity, 0, len(ghostColors))
	for _, color := range ghostColors {
		g.ghosts = append(g.ghosts, NewGhost(g.findEmptyCell(), color, g.cfg.Speed.GhostNormal))
	}
}

// findEmptyCell samples an open interior cell. A maze always keeps one open
// interior cell, so the centre fallback is only reached on grids too small
// to have an interior.
func (g *Game) findEmptyCell() Cell {
	c, ok := g.maze.FindEmptyCell(g.rng)
	if !ok {
		size := g.maze.Size()
		g.logger.Warn("no open cell in maze", "size", size)
		return Cell{X: size / 2, Y: size / 2}
	}
	return c
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	// Restart is honored at any time
	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}

	if g.over || g.paused {
		return core.StepResult{State: g.State()}
	}

	// 1. Player movement: the player's accumulator advances every tick
	dx, dy := input.Direction().Delta()
	g.player.Move(dx, dy, g.maze)

	// 2. Ghost decisions on their own interval
	g.moveGhosts()

	// 3. Power timer countdown
	g.tickPower()

	// 4. Dots and power-ups under the player
	g.collect()

	// 5. Player/ghost collisions
	g.resolveCollisions()

	if g.mode == ModeEndless && !g.over && g.items.DotCount() == 0 {
		g.nextLevel()
	}

	return core.StepResult{State: g.State()}
}

// tickPower counts the power timer down and calms every ghost when it runs out.
func (g *Game) tickPower() {
	if g.powerTicks <= 0 {
		return
	}
	g.powerTicks--
	if g.powerTicks == 0 {
		for _, ghost := range g.ghosts {
			ghost.Scared = false
		}
		g.emit(Event{Type: EventPowerExpired, Cell: g.player.Pos})
	}
}

// collect applies whatever the player is standing on.
func (g *Game) collect() {
	pos := g.player.Pos
	effect := g.items.Collect(pos)

	if effect.Has(EffectDot) {
		g.score += g.cfg.Gameplay.DotPoints
		g.emit(Event{Type: EventDot, Cell: pos, Points: g.cfg.Gameplay.DotPoints})
	}

	if effect.Has(EffectPower) {
		g.score += g.cfg.Gameplay.PowerPoints
		g.powerTicks = g.cfg.Gameplay.PowerDuration
		for _, ghost := range g.ghosts {
			ghost.Scared = true
		}
		g.emit(Event{Type: EventPower, Cell: pos, Points: g.cfg.Gameplay.PowerPoints})
	}
}

// resolveCollisions handles every ghost sharing the player's cell, one ghost
// at a time. Once the episode is over no further ghost is resolved.
func (g *Game) resolveCollisions() {
	for _, ghost := range g.ghosts {
		if ghost.Pos != g.player.Pos {
			continue
		}

		if ghost.Scared {
			at := ghost.Pos
			ghost.Pos = g.findEmptyCell()
			g.score += g.cfg.Gameplay.GhostPoints
			g.emit(Event{Type: EventGhostEaten, Cell: at, Points: g.cfg.Gameplay.GhostPoints})
			continue
		}

		g.lives--
		if g.lives <= 0 {
			g.lives = 0
			g.over = true
			g.emit(Event{Type: EventGameOver, Cell: g.player.Pos})
			g.logger.Info("game over", "game", g.ID(), "score", g.score, "level", g.level, "ticks", g.tick)
			return
		}
		g.emit(Event{Type: EventLifeLost, Cell: g.player.Pos})
		g.scatter()
	}
}

// scatter moves the player and every ghost to fresh random cells.
func (g *Game) scatter() {
	g.player.Pos = g.findEmptyCell()
	for _, ghost := range g.ghosts {
		ghost.Pos = g.findEmptyCell()
	}
}

// nextLevel builds a fresh board after the last dot is eaten in endless mode.
func (g *Game) nextLevel() {
	g.emit(Event{Type: EventLevelCleared, Cell: g.player.Pos})
	g.level++
	g.buildBoard()
	g.logger.Info("level cleared", "level", g.level, "score", g.score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.over,
		Paused:   g.paused,
	}
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Maze returns the current maze.
func (g *Game) Maze() *Maze {
	return g.maze
}

// Items returns the collectibles still on the board.
func (g *Game) Items() *Items {
	return g.items
}

// Dots returns the remaining dots in row-major order.
func (g *Game) Dots() []Cell {
	return g.items.Dots()
}

// PowerUps returns the remaining power-ups.
func (g *Game) PowerUps() []Cell {
	return g.items.PowerUps()
}

// Player returns a copy of the player entity.
func (g *Game) Player() Entity {
	return *g.player
}

// Ghosts returns copies of the ghost entities.
func (g *Game) Ghosts() []Entity {
	ghosts := make([]Entity, len(g.ghosts))
	for i, ghost := range g.ghosts {
		ghosts[i] = *ghost
	}
	return ghosts
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// PowerTicks returns the remaining empowered ticks.
func (g *Game) PowerTicks() int {
	return g.powerTicks
}

// Level returns the current level, starting at 1.
func (g *Game) Level() int {
	return g.level
}

// Ticks returns the number of ticks since the last reset.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Events returns the events recorded during the last Step.
func (g *Game) Events() []Event {
	return append([]Event(nil), g.events...)
}
