// Package config handles demo configuration loading and management.
package config

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/facelight/internal/engine/camera"
	"github.com/Faultbox/facelight/internal/engine/lighting"
	"github.com/Faultbox/facelight/internal/logger"
	"github.com/Faultbox/facelight/internal/orbit"
)

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig  `yaml:"graphics"`
	Scene    SceneConfig     `yaml:"scene"`
	Orbit    orbit.Config    `yaml:"orbit"`
	Lighting lighting.Config `yaml:"lighting"`
	Camera   camera.Config   `yaml:"camera"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Backend        string     `yaml:"backend"` // "sdl" or "glfw"
	Width          int        `yaml:"width"`
	Height         int        `yaml:"height"`
	Fullscreen     bool       `yaml:"fullscreen"`
	VSync          bool       `yaml:"vsync"`
	MaxTextureSize int        `yaml:"max_texture_size"`
	ClearColor     mgl32.Vec3 `yaml:"clear_color"`
	ScreenshotDir  string     `yaml:"screenshot_dir"`
}

// SceneConfig holds the scene content settings.
type SceneConfig struct {
	ModelPath string `yaml:"model_path"`
	// TexturePath overrides the diffuse map named by the model's MTL file.
	TexturePath     string     `yaml:"texture_path"`
	ModelScale      float32    `yaml:"model_scale"`
	SphereSegmentsX uint32     `yaml:"sphere_segments_x"`
	SphereSegmentsY uint32     `yaml:"sphere_segments_y"`
	Wireframe       bool       `yaml:"wireframe"`
	LightColor      mgl32.Vec3 `yaml:"light_color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// LoggerOptions converts the section into logger options with console output on.
func (l LoggingConfig) LoggerOptions() logger.Options {
	opts := logger.Options{Level: l.Level, Console: true}
	if l.LogFile != "" {
		opts.File = logger.FileOptions{
			Path:       l.LogFile,
			MaxSizeMB:  l.MaxSizeMB,
			MaxBackups: l.MaxBackups,
			MaxAgeDays: l.MaxAgeDays,
			Compress:   l.Compress,
		}
	}
	return opts
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Backend:        "sdl",
			Width:          900,
			Height:         600,
			Fullscreen:     false,
			VSync:          true,
			MaxTextureSize: 2048,
			ClearColor:     mgl32.Vec3{0.1, 0.1, 0.1},
			ScreenshotDir:  "screenshots",
		},
		Scene: SceneConfig{
			ModelPath:       "resources/objects/head_obj/woman1.obj",
			ModelScale:      0.05,
			SphereSegmentsX: 15,
			SphereSegmentsY: 15,
			Wireframe:       true,
			LightColor:      mgl32.Vec3{1, 1, 1},
		},
		Orbit:    orbit.DefaultConfig(),
		Lighting: lighting.DefaultConfig(),
		Camera:   camera.DefaultConfig(),
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
