// Package orbit drives the circular motion of the light marker around the
// scene origin.
package orbit

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Config holds orbit animation parameters.
type Config struct {
	// AngleScale ties the animation rate to the frame counter (radians per
	// frame at speed 2).
	AngleScale float32 `yaml:"angle_scale"`
	// RadiusMultiplier is scaled by Scale to give the orbit radius.
	RadiusMultiplier float32 `yaml:"radius_multiplier"`
	// Scale is the scene zoom factor shared with the model transforms.
	Scale float32 `yaml:"scale"`
	// Speed is the initial speed multiplier.
	Speed float32 `yaml:"speed"`
	// SpeedStep is the speed change per frame while a speed key is held.
	SpeedStep float32 `yaml:"speed_step"`
	// RadiusStep is the radius multiplier change per frame while a radius key is held.
	RadiusStep float32 `yaml:"radius_step"`
}

// DefaultConfig returns the default orbit settings.
func DefaultConfig() Config {
	return Config{
		AngleScale:       0.006,
		RadiusMultiplier: 10,
		Scale:            0.1,
		Speed:            1,
		SpeedStep:        0.05,
		RadiusStep:       0.01,
	}
}

// Orbit is the orbit state: frame counter, speed, radius and pause flag,
// plus the last computed position.
type Orbit struct {
	cfg              Config
	frames           uint64
	speed            float32
	radiusMultiplier float32
	paused           bool

	angle    float32
	position mgl32.Vec3
}

// New creates an orbit at frame 0. The initial position is computed
// immediately so it is valid before the first tick. Negative speed and radius
// multiplier are clamped to 0.
func New(cfg Config) *Orbit {
	o := &Orbit{
		cfg:              cfg,
		speed:            clampMin(cfg.Speed, 0),
		radiusMultiplier: clampMin(cfg.RadiusMultiplier, 0),
	}
	o.recompute()
	return o
}

// Tick advances the orbit by one frame.
func (o *Orbit) Tick() {
	o.Advance(1)
}

// Advance advances the orbit by n frames. While paused the frame counter and
// position are left untouched.
func (o *Orbit) Advance(n uint64) {
	if o.paused || n == 0 {
		return
	}
	o.frames += n
	o.recompute()
}

// recompute derives the angle, radius and position from the current state.
func (o *Orbit) recompute() {
	// float64 keeps consecutive frames distinct past 2^24 frames.
	a := float64(o.frames) * float64(o.cfg.AngleScale) * float64(o.speed) / 2
	r := float64(o.Radius())
	o.angle = float32(a)
	o.position = mgl32.Vec3{
		float32(r * gomath.Sin(a)),
		0,
		float32(r * gomath.Cos(a)),
	}
}

// Pause stops the animation.
func (o *Orbit) Pause() {
	o.paused = true
}

// Resume restarts the animation.
func (o *Orbit) Resume() {
	o.paused = false
}

// IncreaseSpeed adds delta to the speed.
func (o *Orbit) IncreaseSpeed(delta float32) {
	o.speed = clampMin(o.speed+delta, 0)
}

// DecreaseSpeed subtracts delta from the speed. Speed never drops below 0.
func (o *Orbit) DecreaseSpeed(delta float32) {
	o.speed = clampMin(o.speed-delta, 0)
}

// IncreaseRadius grows the radius multiplier. Takes effect on the next
// computed frame.
func (o *Orbit) IncreaseRadius(delta float32) {
	o.radiusMultiplier = clampMin(o.radiusMultiplier+delta, 0)
}

// DecreaseRadius shrinks the radius multiplier, stopping at 0.
func (o *Orbit) DecreaseRadius(delta float32) {
	o.radiusMultiplier = clampMin(o.radiusMultiplier-delta, 0)
}

// Position returns the last computed position (y is always 0).
func (o *Orbit) Position() mgl32.Vec3 { return o.position }

// Angle returns the last computed angle in radians.
func (o *Orbit) Angle() float32 { return o.angle }

// Radius returns the current orbit radius.
func (o *Orbit) Radius() float32 { return o.radiusMultiplier * o.cfg.Scale }

// Speed returns the current speed multiplier.
func (o *Orbit) Speed() float32 { return o.speed }

// Paused reports whether the animation is paused.
func (o *Orbit) Paused() bool { return o.paused }

// Frames returns the number of frames advanced while not paused.
func (o *Orbit) Frames() uint64 { return o.frames }

func clampMin(v, lo float32) float32 {
	if v < lo {
		return lo
	}
	return v
}
