package pacman

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning GameStateType = "running"
	StatePaused  GameStateType = "paused"
	StateOver    GameStateType = "over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Level        int
	Score        int
	Lives        int
	PowerTicks   int
	DotsLeft     int
	PowerUpsLeft int
	Player       Cell
	Ghosts       []Cell
	Scared       []bool
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.over:
		state = StateOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Level:        g.level,
		Score:        g.score,
		Lives:        g.lives,
		PowerTicks:   g.powerTicks,
		DotsLeft:     g.items.DotCount(),
		PowerUpsLeft: len(g.items.powerUps),
		Player:       g.player.Pos,
		State:        state,
	}
	for _, ghost := range g.ghosts {
		snap.Ghosts = append(snap.Ghosts, ghost.Pos)
		snap.Scared = append(snap.Scared, ghost.Scared)
	}
	return snap
}
