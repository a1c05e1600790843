package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

const (
	hudHeight = 2 // HUD line plus separator
	cellWidth = 2 // Terminal columns per grid cell

	// scaredBlinkTicks is how long before the power-up expires the ghosts
	// start blinking.
	scaredBlinkTicks = 90
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.maze == nil {
		return
	}

	g.renderHUD(dst)

	size := g.maze.Size()
	boardW := size * cellWidth
	if dst.Width() < boardW || dst.Height() < size+hudHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, size+hudHeight))
		return
	}

	offX := (dst.Width() - boardW) / 2
	offY := hudHeight
	at := func(c Cell) (int, int) {
		return offX + c.X*cellWidth, offY + c.Y
	}

	for _, w := range g.maze.Walls() {
		x, y := at(w)
		dst.SetColored(x, y, '█', core.ColorBlue)
		dst.SetColored(x+1, y, '█', core.ColorBlue)
	}
	for _, d := range g.items.Dots() {
		x, y := at(d)
		dst.SetColored(x, y, '·', core.ColorWhite)
	}
	for _, p := range g.items.PowerUps() {
		x, y := at(p)
		dst.SetColored(x, y, '●', core.ColorBrightMagenta)
	}

	for _, ghost := range g.ghosts {
		x, y := at(ghost.Pos)
		dst.SetColored(x, y, 'M', g.ghostColor(ghost))
	}

	x, y := at(g.player.Pos)
	dst.SetColored(x, y, 'C', g.player.Color)

	switch {
	case g.over:
		g.renderOverlay(dst, "Game Over!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// ghostColor returns the display color for a ghost. Scared ghosts are blue and
// blink white shortly before the power-up runs out.
func (g *Game) ghostColor(ghost *Entity) core.Color {
	if !ghost.Scared {
		return ghost.Color
	}
	if g.powerTicks < scaredBlinkTicks && (g.powerTicks/10)%2 == 1 {
		return core.ColorWhite
	}
	return core.ColorBrightBlue
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Lives: %s", g.Title(), g.score, strings.Repeat("C", g.lives))
	if g.mode == ModeEndless {
		hud += fmt.Sprintf("  Level: %d", g.level)
	}
	if g.powerTicks > 0 {
		hud += fmt.Sprintf("  Power: %d", g.powerTicks)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().Centered(maxLen+4, 5)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	drawCentered(dst, box, box.Y+1, line1)
	drawCentered(dst, box, box.Y+3, line2)
}

// drawCentered draws text centered horizontally inside box.
func drawCentered(dst *core.Screen, box core.Rect, y int, text string) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawText(x, y, text)
}
