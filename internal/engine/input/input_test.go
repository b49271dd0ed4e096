package input

import "testing"

func TestSetKey_DownAndPressed(t *testing.T) {
	s := New()
	s.SetKey(KeyW, true)

	if !s.Down(KeyW) {
		t.Error("expected W to be down")
	}
	if !s.Pressed(KeyW) {
		t.Error("expected W to be pressed this frame")
	}

	s.BeginFrame()
	if !s.Down(KeyW) {
		t.Error("expected W to stay down across frames")
	}
	if s.Pressed(KeyW) {
		t.Error("expected press to be cleared on new frame")
	}

	// Key repeat must not register another press
	s.SetKey(KeyW, true)
	if s.Pressed(KeyW) {
		t.Error("repeat registered as press")
	}

	s.SetKey(KeyW, false)
	if s.Down(KeyW) {
		t.Error("expected W to be released")
	}
}

func TestSetKey_IgnoresUnknown(t *testing.T) {
	s := New()
	s.SetKey(KeyUnknown, true)
	s.SetKey(Key(-1), true)
	s.SetKey(keyCount, true)
	if s.Down(KeyUnknown) || s.Down(Key(-1)) || s.Down(keyCount) {
		t.Error("unknown keys should never be down")
	}
}

func TestMouseAndScroll(t *testing.T) {
	s := New()
	s.AddMouseMotion(3, -2)
	s.AddMouseMotion(1, 1)
	s.AddScroll(1)
	s.AddScroll(0.5)

	dx, dy := s.MouseDelta()
	if dx != 4 || dy != -1 {
		t.Errorf("MouseDelta() = (%v, %v), want (4, -1)", dx, dy)
	}
	if s.Scroll() != 1.5 {
		t.Errorf("Scroll() = %v, want 1.5", s.Scroll())
	}

	s.BeginFrame()
	dx, dy = s.MouseDelta()
	if dx != 0 || dy != 0 || s.Scroll() != 0 {
		t.Error("expected mouse data to reset on new frame")
	}
}

func TestResizeAndQuit(t *testing.T) {
	s := New()
	if _, _, ok := s.Resized(); ok {
		t.Error("unexpected resize")
	}
	s.SetResize(800, 600)
	w, h, ok := s.Resized()
	if !ok || w != 800 || h != 600 {
		t.Errorf("Resized() = (%d, %d, %v), want (800, 600, true)", w, h, ok)
	}
	s.BeginFrame()
	if _, _, ok := s.Resized(); ok {
		t.Error("resize should reset on new frame")
	}

	s.RequestQuit()
	s.BeginFrame()
	if !s.Quit() {
		t.Error("quit should persist")
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "escape" {
		t.Errorf("unexpected name %q", KeyEscape.String())
	}
	if Key(500).String() != "unknown" {
		t.Errorf("unexpected name %q", Key(500).String())
	}
}
