package core

import "testing"

func TestInputFrameDirectionPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		held     []Action
		expected Action
	}{
		{"nothing held", nil, ActionNone},
		{"single up", []Action{ActionUp}, ActionUp},
		{"left beats right", []Action{ActionRight, ActionLeft}, ActionLeft},
		{"right beats up", []Action{ActionUp, ActionRight}, ActionRight},
		{"up beats down", []Action{ActionDown, ActionUp}, ActionUp},
		{"non-direction ignored", []Action{ActionPause}, ActionNone},
		{"all held", []Action{ActionDown, ActionUp, ActionRight, ActionLeft}, ActionLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := NewInputFrame()
			for _, a := range tc.held {
				frame.Set(a)
			}
			if got := frame.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestActionDelta(t *testing.T) {
	tests := []struct {
		action Action
		dx, dy int
	}{
		{ActionLeft, -1, 0},
		{ActionRight, 1, 0},
		{ActionUp, 0, -1},
		{ActionDown, 0, 1},
		{ActionRestart, 0, 0},
		{ActionNone, 0, 0},
	}

	for _, tc := range tests {
		dx, dy := tc.action.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta() = (%d, %d), expected (%d, %d)", tc.action, dx, dy, tc.dx, tc.dy)
		}
		if tc.action.IsDirection() != (tc.dx != 0 || tc.dy != 0) {
			t.Errorf("%v.IsDirection() = %v", tc.action, tc.action.IsDirection())
		}
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	frame := NewInputFrame()
	frame.Set(ActionLeft)
	frame.Set(ActionRestart)

	clone := frame.Clone()
	frame.Clear()

	if frame.Has(ActionLeft) || frame.Has(ActionRestart) {
		t.Error("Clear() should remove all actions")
	}
	if !clone.Has(ActionLeft) || !clone.Has(ActionRestart) {
		t.Error("Clone() should be independent of the original frame")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("Zero-value frame should report no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set() on zero-value frame should allocate")
	}
}
