package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/facelight/internal/logger"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	var errs []error

	switch c.Graphics.Backend {
	case "sdl", "glfw":
	default:
		errs = append(errs, fmt.Errorf("graphics.backend %q: must be sdl or glfw", c.Graphics.Backend))
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size %dx%d: must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.MaxTextureSize < 0 {
		errs = append(errs, fmt.Errorf("graphics.max_texture_size %d: must not be negative", c.Graphics.MaxTextureSize))
	}
	if c.Scene.SphereSegmentsX == 0 || c.Scene.SphereSegmentsY == 0 {
		errs = append(errs, fmt.Errorf("scene sphere segments %dx%d: must be at least 1",
			c.Scene.SphereSegmentsX, c.Scene.SphereSegmentsY))
	}
	if c.Orbit.Scale <= 0 {
		errs = append(errs, fmt.Errorf("orbit.scale %v: must be positive", c.Orbit.Scale))
	}
	if c.Orbit.RadiusMultiplier < 0 {
		errs = append(errs, fmt.Errorf("orbit.radius_multiplier %v: must not be negative", c.Orbit.RadiusMultiplier))
	}
	if c.Orbit.SpeedStep < 0 || c.Orbit.RadiusStep < 0 {
		errs = append(errs, fmt.Errorf("orbit steps must not be negative"))
	}
	if c.Lighting.Material.Shininess < 0 {
		errs = append(errs, fmt.Errorf("lighting.material.shininess %v: must not be negative", c.Lighting.Material.Shininess))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip range [%v, %v]: need 0 < near < far", c.Camera.Near, c.Camera.Far))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
