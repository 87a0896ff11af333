package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionReveal)
	f.Click(3, 4, PointerSecondary)

	if !f.Has(ActionReveal) || f.Has(ActionFlag) {
		t.Error("Has() reports wrong actions")
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Pointer{X: 3, Y: 4, Button: PointerSecondary}) {
		t.Errorf("Clicks = %+v", f.Clicks)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame did not record action")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionReveal, "Reveal"},
		{ActionFlag, "Flag"},
		{ActionLeft, "Left"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.a, got, tc.want)
		}
	}
}
