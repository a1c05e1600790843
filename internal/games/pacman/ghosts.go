package pacman

// chaseStep returns the greedy step for a ghost at from relative to target.
//
// Hunting ghosts step toward the target on each axis; on an axis where they
// are already aligned they do not move. Scared ghosts step away, and when
// aligned they flee in the positive direction.
func chaseStep(from, target Cell, scared bool) (dx, dy int) {
	if scared {
		dx, dy = 1, 1
		if from.X < target.X {
			dx = -1
		}
		if from.Y < target.Y {
			dy = -1
		}
		return dx, dy
	}

	switch {
	case from.X < target.X:
		dx = 1
	case from.X > target.X:
		dx = -1
	}
	switch {
	case from.Y < target.Y:
		dy = 1
	case from.Y > target.Y:
		dy = -1
	}
	return dx, dy
}

// ghostSpeed returns the current speed for a ghost.
// Scared ghosts are slower than hunting ones.
func (g *Game) ghostSpeed(scared bool) float64 {
	base := g.cfg.Speed.GhostNormal
	if scared {
		base = g.cfg.Speed.GhostScared
	}
	return g.difficulty.Speed(base, g.score, int(g.tick))
}

// moveGhosts runs one ghost decision every MoveDelay ticks.
//
// Each ghost takes a single-axis step, the axis picked by a coin flip. A
// hunting ghost already aligned with the player on the picked axis uses the
// other axis so it still closes in.
func (g *Game) moveGhosts() {
	g.moveTimer++
	if g.moveTimer < g.cfg.Ghosts.MoveDelay {
		return
	}
	g.moveTimer = 0

	for _, ghost := range g.ghosts {
		ghost.Speed = g.ghostSpeed(ghost.Scared)
		dx, dy := chaseStep(ghost.Pos, g.player.Pos, ghost.Scared)

		horizontal := g.rng.Float64() < 0.5
		if horizontal && dx == 0 {
			horizontal = false
		} else if !horizontal && dy == 0 {
			horizontal = true
		}

		if horizontal {
			ghost.Move(dx, 0, g.maze)
		} else {
			ghost.Move(0, dy, g.maze)
		}
	}
}
