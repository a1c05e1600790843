package pacman

import "math/rand"

// Effect reports what a collection picked up. Both a dot and a power-up can
// be collected in the same call, so effects combine as bits.
type Effect uint8

const (
	EffectNone  Effect = 0
	EffectDot   Effect = 1 << 0
	EffectPower Effect = 1 << 1
)

// Has reports whether f is part of e.
func (e Effect) Has(f Effect) bool {
	return e&f != 0
}

// String returns a human-readable effect name.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectDot:
		return "dot"
	case EffectPower:
		return "power"
	case EffectDot | EffectPower:
		return "dot+power"
	default:
		return "unknown"
	}
}

// Items holds the dots and power-ups of one episode. Items are only ever
// removed.
type Items struct {
	dots     map[Cell]struct{}
	powerUps []Cell
}

// NewItems places a dot on every open cell of the maze and powerUps power-ups
// on distinct dot cells chosen at random. Power-ups sit on top of dots.
func NewItems(rng *rand.Rand, m *Maze, powerUps int) *Items {
	open := m.OpenCells()
	it := &Items{
		dots: make(map[Cell]struct{}, len(open)),
	}
	for _, c := range open {
		it.dots[c] = struct{}{}
	}

	n := min(powerUps, len(open))
	// Partial Fisher-Yates over the row-major open cells keeps placement
	// deterministic for a seed.
	for i := range n {
		j := i + rng.Intn(len(open)-i)
		open[i], open[j] = open[j], open[i]
		it.powerUps = append(it.powerUps, open[i])
	}
	return it
}

// Collect removes whatever sits on c and reports it.
func (it *Items) Collect(c Cell) Effect {
	effect := EffectNone

	if _, ok := it.dots[c]; ok {
		delete(it.dots, c)
		effect |= EffectDot
	}

	for i, p := range it.powerUps {
		if p == c {
			it.powerUps = append(it.powerUps[:i], it.powerUps[i+1:]...)
			effect |= EffectPower
			break
		}
	}
	return effect
}

// HasDot reports whether a dot remains on c.
func (it *Items) HasDot(c Cell) bool {
	_, ok := it.dots[c]
	return ok
}

// HasPowerUp reports whether a power-up remains on c.
func (it *Items) HasPowerUp(c Cell) bool {
	for _, p := range it.powerUps {
		if p == c {
			return true
		}
	}
	return false
}

// DotCount returns the number of remaining dots.
func (it *Items) DotCount() int {
	return len(it.dots)
}

// Dots returns the remaining dots in row-major order.
func (it *Items) Dots() []Cell {
	dots := make([]Cell, 0, len(it.dots))
	for c := range it.dots {
		dots = append(dots, c)
	}
	sortCells(dots)
	return dots
}

// PowerUps returns a copy of the remaining power-ups.
func (it *Items) PowerUps() []Cell {
	return append([]Cell(nil), it.powerUps...)
}
