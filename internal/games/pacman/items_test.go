package pacman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemsCoversOpenCells(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := GenerateMaze(rng, 20, 60)
	it := NewItems(rng, m, 4)

	assert.Equal(t, m.OpenCells(), it.Dots())

	powerUps := it.PowerUps()
	require.Len(t, powerUps, 4)
	seen := make(map[Cell]bool)
	for _, p := range powerUps {
		assert.False(t, seen[p], "duplicate power-up %v", p)
		seen[p] = true
		assert.True(t, it.HasDot(p), "power-ups sit on dots")
		assert.True(t, it.HasPowerUp(p))
	}
}

func TestNewItemsPowerUpsLimitedByOpenCells(t *testing.T) {
	m := NewMaze(4) // 2x2 interior
	it := NewItems(rand.New(rand.NewSource(1)), m, 10)
	assert.Len(t, it.PowerUps(), 4)

	none := NewItems(rand.New(rand.NewSource(1)), m, 0)
	assert.Empty(t, none.PowerUps())
}

func TestCollectDot(t *testing.T) {
	m := NewMaze(6)
	it := NewItems(rand.New(rand.NewSource(1)), m, 0)
	before := it.DotCount()

	assert.Equal(t, EffectDot, it.Collect(Cell{2, 2}))
	assert.False(t, it.HasDot(Cell{2, 2}))
	assert.Equal(t, before-1, it.DotCount())

	// Removal is permanent
	assert.Equal(t, EffectNone, it.Collect(Cell{2, 2}))
	assert.Equal(t, before-1, it.DotCount())

	assert.Equal(t, EffectNone, it.Collect(Cell{0, 0}), "walls hold nothing")
}

func TestCollectPowerUpAndDotTogether(t *testing.T) {
	m := NewMaze(6)
	it := NewItems(rand.New(rand.NewSource(1)), m, 1)
	p := it.PowerUps()[0]

	effect := it.Collect(p)
	assert.True(t, effect.Has(EffectDot))
	assert.True(t, effect.Has(EffectPower))
	assert.Equal(t, "dot+power", effect.String())
	assert.Empty(t, it.PowerUps())

	assert.Equal(t, EffectNone, it.Collect(p))
}

func TestCollectPowerUpWithoutDot(t *testing.T) {
	m := NewMaze(6)
	it := NewItems(rand.New(rand.NewSource(1)), m, 1)
	p := it.PowerUps()[0]
	it.Collect(p)
	it.powerUps = []Cell{p}

	assert.Equal(t, EffectPower, it.Collect(p))
}

func TestEffectString(t *testing.T) {
	assert.Equal(t, "none", EffectNone.String())
	assert.Equal(t, "dot", EffectDot.String())
	assert.Equal(t, "power", EffectPower.String())
	assert.False(t, EffectDot.Has(EffectPower))
}
