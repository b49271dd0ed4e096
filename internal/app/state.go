package app

import (
	"github.com/Faultbox/facelight/internal/engine/camera"
	"github.com/Faultbox/facelight/internal/engine/input"
	"github.com/Faultbox/facelight/internal/engine/lighting"
	"github.com/Faultbox/facelight/internal/orbit"
)

// orbitBindings maps held keys to orbit commands. Held keys repeat every
// frame, so speed and radius change continuously while a key is down.
var orbitBindings = []struct {
	key input.Key
	cmd orbit.Command
}{
	{input.KeyP, orbit.CommandPause},
	{input.KeyU, orbit.CommandResume},
	{input.KeyJ, orbit.CommandSpeedUp},
	{input.KeyH, orbit.CommandSlowDown},
	{input.KeyUp, orbit.CommandRadiusUp},
	{input.KeyDown, orbit.CommandRadiusDown},
}

var cameraBindings = []struct {
	key input.Key
	dir camera.Direction
}{
	{input.KeyW, camera.Forward},
	{input.KeyS, camera.Backward},
	{input.KeyA, camera.Left},
	{input.KeyD, camera.Right},
	{input.KeySpace, camera.Up},
	{input.KeyLeftCtrl, camera.Down},
}

// State is the mutable scene state advanced once per frame.
type State struct {
	Camera   *camera.FlyCamera
	Orbit    *orbit.Orbit
	Lighting lighting.Config

	// Wireframe toggles line drawing of the light marker.
	Wireframe bool
}

// NewState creates the scene state from its component settings.
func NewState(orbitCfg orbit.Config, cameraCfg camera.Config, lightCfg lighting.Config, wireframe bool) *State {
	s := &State{
		Camera:    camera.NewFlyCamera(cameraCfg),
		Orbit:     orbit.New(orbitCfg),
		Lighting:  lightCfg,
		Wireframe: wireframe,
	}
	s.Lighting.Light.Clamp()
	return s
}

// OrbitCommands returns the orbit commands requested by the held keys,
// in binding order.
func OrbitCommands(in *input.State) []orbit.Command {
	var cmds []orbit.Command
	for _, b := range orbitBindings {
		if in.Down(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}

// Update applies one frame of input and advances the orbit by one tick.
// It returns true when the application should quit.
func (s *State) Update(in *input.State, dt float32) bool {
	if in.Quit() || in.Down(input.KeyEscape) {
		return true
	}

	for _, b := range cameraBindings {
		if in.Down(b.key) {
			s.Camera.ProcessKeyboard(b.dir, dt)
		}
	}
	if dx, dy := in.MouseDelta(); dx != 0 || dy != 0 {
		s.Camera.ProcessMouseMovement(dx, dy, true)
	}
	if scroll := in.Scroll(); scroll != 0 {
		s.Camera.ProcessMouseScroll(scroll)
	}

	for _, cmd := range OrbitCommands(in) {
		s.Orbit.Apply(cmd)
	}
	if in.Pressed(input.KeyF1) {
		s.Wireframe = !s.Wireframe
	}

	s.Orbit.Tick()
	return false
}

// ApplyModelShininess fills in the material shininess from the model's MTL
// when the configured value is unset (0). Without an MTL value the default
// shininess is used. It reports whether the configured value was replaced.
func (s *State) ApplyModelShininess(ns float32) bool {
	if s.Lighting.Material.Shininess > 0 {
		return false
	}
	if ns > 0 {
		s.Lighting.Material.Shininess = ns
	} else {
		s.Lighting.Material.Shininess = lighting.DefaultConfig().Material.Shininess
	}
	return true
}

// Light returns the point light placed at the current orbit position.
func (s *State) Light() lighting.PointLight {
	return s.Lighting.Light.WithPosition(s.Orbit.Position())
}
