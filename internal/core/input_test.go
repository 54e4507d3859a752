package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionNone)
	f.Set(ActionRight)
	f.Set(ActionConfirm)

	got := f.Actions()
	want := []Action{ActionRight, ActionRight, ActionConfirm}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if !f.Has(ActionConfirm) || f.Has(ActionPause) {
		t.Error("Has() mismatch")
	}
}

func TestInputFramePointerAndClear(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.Pointer(); ok {
		t.Error("new frame should have no pointer")
	}

	f.SetPointer(12, 7)
	f.Set(ActionPause)
	p, ok := f.Pointer()
	if !ok || p.X != 12 || p.Y != 7 {
		t.Errorf("Pointer() = %+v, %v; expected (12, 7), true", p, ok)
	}

	f.Clear()
	if _, ok := f.Pointer(); ok {
		t.Error("Clear should drop the pointer")
	}
	if len(f.Actions()) != 0 {
		t.Error("Clear should drop actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionColorMenu.String() != "ColorMenu" {
		t.Errorf("String() = %q", ActionColorMenu.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
