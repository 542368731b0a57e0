package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Has(ActionLeft) should be true after Set")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be false")
	}

	// Zero value frame must not panic
	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("Zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFramePointerAndClear(t *testing.T) {
	f := NewInputFrame()
	f.AddPointer(3)
	f.AddPointer(-1)
	f.Set(ActionRight)

	if f.Pointer != 2 {
		t.Errorf("Pointer = %f, expected 2", f.Pointer)
	}

	clone := f.Clone()
	f.Clear()

	if f.Pointer != 0 || f.Has(ActionRight) {
		t.Error("Clear should reset actions and pointer")
	}
	if clone.Pointer != 2 || !clone.Has(ActionRight) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
