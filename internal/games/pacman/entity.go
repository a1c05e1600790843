package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// Kind distinguishes the player from the ghosts.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindGhost
)

// ghostColors are the fixed colors of the three ghosts, in spawn order.
var ghostColors = []core.Color{core.ColorRed, core.ColorPink, core.ColorCyan}

// Entity is a movable piece on the grid: the player or a ghost.
//
// Speed is the fraction of a cell gained per Move call. Movement is resolved
// only once the accumulated fraction reaches a whole cell, so an entity with
// speed 0.5 steps on every other call.
type Entity struct {
	Pos    Cell
	Kind   Kind
	Color  core.Color
	Scared bool // Ghosts only
	Speed  float64

	accum float64
}

// NewPlayer creates the player entity.
func NewPlayer(pos Cell, speed float64) *Entity {
	return &Entity{
		Pos:   pos,
		Kind:  KindPlayer,
		Color: core.ColorYellow,
		Speed: speed,
	}
}

// NewGhost creates a hunting ghost.
func NewGhost(pos Cell, color core.Color, speed float64) *Entity {
	return &Entity{
		Pos:   pos,
		Kind:  KindGhost,
		Color: color,
		Speed: speed,
	}
}

// Move tries to step the entity by (dx, dy).
//
// Every call adds Speed to the movement accumulator. Once it reaches 1 the
// accumulator is reset and the destination is checked: the step happens only
// if the cell is on the grid and not a wall. A blocked step still spends the
// accumulated movement. Returns true if the position changed.
func (e *Entity) Move(dx, dy int, m *Maze) bool {
	e.accum += e.Speed
	if e.accum < 1 {
		return false
	}
	e.accum = 0

	next := e.Pos.Add(dx, dy)
	if !m.Open(next) {
		return false
	}
	e.Pos = next
	return true
}

// Accum returns the current movement accumulator.
func (e *Entity) Accum() float64 {
	return e.accum
}
