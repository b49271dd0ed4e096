package camera

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-5
}

func TestNewFlyCamera_LooksDownNegZ(t *testing.T) {
	c := NewFlyCamera(DefaultConfig())

	if !near(c.Front.Z(), -1) || !near(c.Front.X(), 0) || !near(c.Front.Y(), 0) {
		t.Errorf("Front = %v, want (0, 0, -1)", c.Front)
	}
	if !near(c.Right.X(), 1) {
		t.Errorf("Right = %v, want (1, 0, 0)", c.Right)
	}
	if !near(c.Up.Y(), 1) {
		t.Errorf("Up = %v, want (0, 1, 0)", c.Up)
	}
}

func TestProcessKeyboard(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, 3 - 2.5}},
		{Backward, mgl32.Vec3{0, 0, 3 + 2.5}},
		{Left, mgl32.Vec3{-2.5, 0, 3}},
		{Right, mgl32.Vec3{2.5, 0, 3}},
		{Up, mgl32.Vec3{0, 2.5, 3}},
		{Down, mgl32.Vec3{0, -2.5, 3}},
	}

	for _, tt := range tests {
		c := NewFlyCamera(DefaultConfig())
		c.ProcessKeyboard(tt.dir, 1)
		for i := 0; i < 3; i++ {
			if !near(c.Position[i], tt.want[i]) {
				t.Errorf("direction %d: position = %v, want %v", tt.dir, c.Position, tt.want)
				break
			}
		}
	}
}

func TestProcessMouseMovement_PitchClamp(t *testing.T) {
	c := NewFlyCamera(DefaultConfig())
	c.ProcessMouseMovement(0, 10000, true)
	if c.Pitch != 89 {
		t.Errorf("Pitch = %v, want 89", c.Pitch)
	}
	c.ProcessMouseMovement(0, -20000, true)
	if c.Pitch != -89 {
		t.Errorf("Pitch = %v, want -89", c.Pitch)
	}

	c.ProcessMouseMovement(0, 2000, false)
	if c.Pitch <= 89 {
		t.Errorf("unconstrained Pitch = %v, want > 89", c.Pitch)
	}
}

func TestProcessMouseMovement_Yaw(t *testing.T) {
	c := NewFlyCamera(DefaultConfig())
	// 900 px * 0.1 = 90 degrees: from -90 (looking -Z) to 0 (looking +X)
	c.ProcessMouseMovement(900, 0, true)
	if !near(c.Yaw, 0) {
		t.Errorf("Yaw = %v, want 0", c.Yaw)
	}
	if !near(c.Front.X(), 1) {
		t.Errorf("Front = %v, want (1, 0, 0)", c.Front)
	}
}

func TestProcessMouseScroll_Clamp(t *testing.T) {
	c := NewFlyCamera(DefaultConfig())
	c.ProcessMouseScroll(10)
	if c.Zoom != 35 {
		t.Errorf("Zoom = %v, want 35", c.Zoom)
	}
	c.ProcessMouseScroll(100)
	if c.Zoom != MinZoom {
		t.Errorf("Zoom = %v, want %v", c.Zoom, MinZoom)
	}
	c.ProcessMouseScroll(-100)
	if c.Zoom != MaxZoom {
		t.Errorf("Zoom = %v, want %v", c.Zoom, MaxZoom)
	}
}

func TestViewMatrix_OriginInFront(t *testing.T) {
	c := NewFlyCamera(DefaultConfig())
	view := c.ViewMatrix()
	p := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, view)
	// Origin is 3 units ahead: view space looks down -Z
	if !near(p.Z(), -3) || !near(p.X(), 0) || !near(p.Y(), 0) {
		t.Errorf("origin in view space = %v, want (0, 0, -3)", p)
	}
}

func TestProjection_InvalidAspect(t *testing.T) {
	c := NewFlyCamera(DefaultConfig())
	if c.Projection(0) != c.Projection(1) {
		t.Error("expected non-positive aspect to fall back to 1")
	}
}
