package core

import "testing"

func TestInputFrameHeld(t *testing.T) {
	f := FrameOf(ActionUp, ActionFire)

	if !f.Held(ActionUp) || !f.Held(ActionFire) {
		t.Error("FrameOf should mark the given actions as held")
	}
	if f.Held(ActionDown) {
		t.Error("Down was never set")
	}

	var zero InputFrame
	if zero.Held(ActionUp) {
		t.Error("Zero-value frame should report nothing held")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on a zero-value frame should allocate and record the action")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := FrameOf(ActionLeft)
	c := f.Clone()
	f.Clear()

	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !c.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
