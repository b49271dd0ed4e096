// Package camera provides a first-person fly camera for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement direction relative to the camera.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Zoom (field of view) limits in degrees.
const (
	MinZoom float32 = 1
	MaxZoom float32 = 45
)

// Config holds camera defaults.
type Config struct {
	Position    mgl32.Vec3 `yaml:"position"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Zoom        float32    `yaml:"zoom"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// DefaultConfig returns a camera three units in front of the origin.
func DefaultConfig() Config {
	return Config{
		Position:    mgl32.Vec3{0, 0, 3},
		Speed:       2.5,
		Sensitivity: 0.1,
		Zoom:        MaxZoom,
		Near:        0.1,
		Far:         100,
	}
}

// FlyCamera moves freely and looks around using Euler angles.
type FlyCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Euler angles in degrees
	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32

	Near float32
	Far  float32
}

// NewFlyCamera creates a camera looking down -Z.
func NewFlyCamera(cfg Config) *FlyCamera {
	c := &FlyCamera{
		Position:         cfg.Position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              -90,
		Pitch:            0,
		MovementSpeed:    cfg.Speed,
		MouseSensitivity: cfg.Sensitivity,
		Zoom:             clamp(cfg.Zoom, MinZoom, MaxZoom),
		Near:             cfg.Near,
		Far:              cfg.Far,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection returns the perspective projection for the given aspect ratio.
func (c *FlyCamera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, c.Near, c.Far)
}

// ProcessKeyboard moves the camera; dt is the frame time in seconds.
func (c *FlyCamera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// ProcessMouseMovement rotates the camera by a mouse offset in pixels.
// yOffset is positive when the mouse moves up.
func (c *FlyCamera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	// Past 90 degrees the view flips
	if constrainPitch {
		c.Pitch = clamp(c.Pitch, -89, 89)
	}
	c.updateVectors()
}

// ProcessMouseScroll zooms by narrowing or widening the field of view.
func (c *FlyCamera) ProcessMouseScroll(yOffset float32) {
	c.Zoom = clamp(c.Zoom-yOffset, MinZoom, MaxZoom)
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
