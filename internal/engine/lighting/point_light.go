// Package lighting provides Phong point light and material parameters.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// PointLight is a Phong point light with distance attenuation.
type PointLight struct {
	Position mgl32.Vec3 `yaml:"-"`
	Ambient  mgl32.Vec3 `yaml:"ambient"`
	Diffuse  mgl32.Vec3 `yaml:"diffuse"`
	Specular mgl32.Vec3 `yaml:"specular"`

	// Attenuation terms, evaluated in the face shader:
	// 1 / (Constant + Linear*d + Quadratic*d^2)
	Constant  float32 `yaml:"constant"`
	Linear    float32 `yaml:"linear"`
	Quadratic float32 `yaml:"quadratic"`
}

// Material holds surface properties not sampled from textures.
type Material struct {
	Shininess float32 `yaml:"shininess"`
}

// Config groups the light and material settings of the scene.
type Config struct {
	Light    PointLight `yaml:"light"`
	Material Material   `yaml:"material"`
}

// DefaultConfig returns a soft white light and a matte skin material.
func DefaultConfig() Config {
	return Config{
		Light: PointLight{
			Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
			Diffuse:   mgl32.Vec3{0.6, 0.6, 0.6},
			Specular:  mgl32.Vec3{0.8, 0.8, 0.8},
			Constant:  0.8,
			Linear:    0.014,
			Quadratic: 0.0007,
		},
		Material: Material{
			Shininess: 5,
		},
	}
}

// WithPosition returns a copy of the light moved to pos.
func (l PointLight) WithPosition(pos mgl32.Vec3) PointLight {
	l.Position = pos
	return l
}

// Clamp limits every color channel to the 0-1 range.
func (l *PointLight) Clamp() {
	for _, c := range []*mgl32.Vec3{&l.Ambient, &l.Diffuse, &l.Specular} {
		for i := 0; i < 3; i++ {
			if c[i] > 1 {
				c[i] = 1
			}
			if c[i] < 0 {
				c[i] = 0
			}
		}
	}
}
