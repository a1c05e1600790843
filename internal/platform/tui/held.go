package tui

import "github.com/vovakirdan/tui-pacman/internal/core"

// DefaultHoldTicks is how many ticks a direction stays held after a press.
const DefaultHoldTicks = 8

// HeldKeys turns key presses into per-tick key state.
//
// Terminals report presses and auto-repeats but never releases. A direction
// press marks that direction held for holdTicks ticks and releases the other
// directions; auto-repeat refreshes the hold while the key is down. Every
// other action is delivered once, on the next frame.
type HeldKeys struct {
	holdTicks int
	held      map[core.Action]int
	pending   core.InputFrame
}

// NewHeldKeys creates a tracker. Non-positive holdTicks use DefaultHoldTicks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HeldKeys{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		pending:   core.NewInputFrame(),
	}
}

// Press records a key press.
func (h *HeldKeys) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !a.IsDirection() {
		h.pending.Set(a)
		return
	}
	for _, d := range core.Directions {
		if d != a {
			delete(h.held, d)
		}
	}
	h.held[a] = h.holdTicks
}

// Held reports whether a is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	return h.held[a] > 0
}

// Frame returns the input for the next tick and ages the held keys by one
// tick. One-shot actions are consumed.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()

	for a, left := range h.held {
		frame.Set(a)
		if left <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = left - 1
		}
	}
	return frame
}

// Release drops every held key and pending action.
func (h *HeldKeys) Release() {
	clear(h.held)
	h.pending.Clear()
}
