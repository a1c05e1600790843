package pacman

// EventType identifies something that happened during a tick.
type EventType string

const (
	EventDot          EventType = "dot"
	EventPower        EventType = "power"
	EventPowerExpired EventType = "power_expired"
	EventGhostEaten   EventType = "ghost_eaten"
	EventLifeLost     EventType = "life_lost"
	EventGameOver     EventType = "game_over"
	EventLevelCleared EventType = "level_cleared"
)

// Event is a single occurrence recorded by Step.
type Event struct {
	Type   EventType
	Cell   Cell // Where it happened, when meaningful
	Points int  // Score awarded
}

// emit records an event for the current tick and logs it.
func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
	g.logger.Debug("event",
		"type", ev.Type,
		"tick", g.tick,
		"x", ev.Cell.X,
		"y", ev.Cell.Y,
		"points", ev.Points,
		"score", g.score,
		"lives", g.lives,
	)
}
