package pacman

import (
	"math/rand"
	"sort"
)

// maxSampleAttempts bounds rejection sampling in FindEmptyCell before it
// falls back to scanning the open cells.
const maxSampleAttempts = 1000

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Maze is the set of blocked cells of a square grid.
// The outer ring is always blocked. A Maze is not modified after generation.
type Maze struct {
	size    int
	blocked map[Cell]struct{}
}

// NewMaze builds a size×size maze with the boundary ring plus the given
// interior walls. Walls outside the interior are ignored.
func NewMaze(size int, walls ...Cell) *Maze {
	m := &Maze{
		size:    size,
		blocked: make(map[Cell]struct{}, 4*size+len(walls)),
	}
	for i := 0; i < size; i++ {
		m.blocked[Cell{X: i, Y: 0}] = struct{}{}
		m.blocked[Cell{X: i, Y: size - 1}] = struct{}{}
		m.blocked[Cell{X: 0, Y: i}] = struct{}{}
		m.blocked[Cell{X: size - 1, Y: i}] = struct{}{}
	}
	for _, w := range walls {
		if m.inInterior(w) {
			m.blocked[w] = struct{}{}
		}
	}
	return m
}

// GenerateMaze builds a maze with extraWalls interior walls drawn uniformly
// and independently from the interior. Duplicate draws collapse.
//
// At least one interior cell is left open whenever the grid has an interior:
// if the draws filled it, the centre cell is reopened.
func GenerateMaze(rng *rand.Rand, size, extraWalls int) *Maze {
	m := NewMaze(size)
	if size < 3 {
		return m
	}

	for range extraWalls {
		c := Cell{
			X: 1 + rng.Intn(size-2),
			Y: 1 + rng.Intn(size-2),
		}
		m.blocked[c] = struct{}{}
	}

	interior := (size - 2) * (size - 2)
	if len(m.blocked)-boundaryCount(size) >= interior {
		delete(m.blocked, Cell{X: size / 2, Y: size / 2})
	}
	return m
}

// boundaryCount returns the number of cells in the outer ring.
func boundaryCount(size int) int {
	if size <= 1 {
		return size * size
	}
	return 4*size - 4
}

// Size returns the side length of the grid.
func (m *Maze) Size() int {
	return m.size
}

// InBounds reports whether c lies on the grid.
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.size && c.Y >= 0 && c.Y < m.size
}

// Blocked reports whether c is a wall. Out-of-bounds cells are not walls;
// callers check InBounds separately.
func (m *Maze) Blocked(c Cell) bool {
	_, ok := m.blocked[c]
	return ok
}

// Open reports whether an entity may occupy c.
func (m *Maze) Open(c Cell) bool {
	return m.InBounds(c) && !m.Blocked(c)
}

func (m *Maze) inInterior(c Cell) bool {
	return c.X >= 1 && c.X <= m.size-2 && c.Y >= 1 && c.Y <= m.size-2
}

// Walls returns the blocked cells in row-major order.
func (m *Maze) Walls() []Cell {
	walls := make([]Cell, 0, len(m.blocked))
	for c := range m.blocked {
		walls = append(walls, c)
	}
	sortCells(walls)
	return walls
}

// OpenCells returns every traversable cell in row-major order.
func (m *Maze) OpenCells() []Cell {
	var cells []Cell
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			c := Cell{X: x, Y: y}
			if !m.Blocked(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// FindEmptyCell samples a uniformly random open interior cell.
// After maxSampleAttempts misses it falls back to the first open interior
// cell in row-major order. Returns false only when the interior is fully
// blocked.
func (m *Maze) FindEmptyCell(rng *rand.Rand) (Cell, bool) {
	if m.size < 3 {
		return Cell{}, false
	}

	for range maxSampleAttempts {
		c := Cell{
			X: 1 + rng.Intn(m.size-2),
			Y: 1 + rng.Intn(m.size-2),
		}
		if !m.Blocked(c) {
			return c, true
		}
	}

	for y := 1; y <= m.size-2; y++ {
		for x := 1; x <= m.size-2; x++ {
			c := Cell{X: x, Y: y}
			if !m.Blocked(c) {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// sortCells orders cells row-major (by Y, then X).
func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}
