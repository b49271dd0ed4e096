package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 900 || cfg.Graphics.Height != 600 {
		t.Errorf("expected 900x600, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.Backend != "sdl" {
		t.Errorf("expected backend sdl, got %s", cfg.Graphics.Backend)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	if cfg.Scene.SphereSegmentsX != 15 || cfg.Scene.SphereSegmentsY != 15 {
		t.Errorf("expected 15x15 sphere segments, got %dx%d", cfg.Scene.SphereSegmentsX, cfg.Scene.SphereSegmentsY)
	}
	if !cfg.Scene.Wireframe {
		t.Error("expected wireframe sphere by default")
	}

	if cfg.Orbit.AngleScale != 0.006 {
		t.Errorf("expected angle scale 0.006, got %f", cfg.Orbit.AngleScale)
	}
	if cfg.Lighting.Material.Shininess != 5 {
		t.Errorf("expected shininess 5, got %f", cfg.Lighting.Material.Shininess)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  backend: glfw
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  max_texture_size: 1024

scene:
  model_path: "assets/head.obj"
  sphere_segments_x: 32
  sphere_segments_y: 16
  wireframe: false

orbit:
  speed: 2.5
  radius_multiplier: 20

lighting:
  light:
    ambient: [0.1, 0.1, 0.1]
  material:
    shininess: 32

camera:
  position: [0, 1, 5]

logging:
  level: "debug"
  log_file: "facelight.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Backend != "glfw" {
		t.Errorf("expected backend glfw, got %s", cfg.Graphics.Backend)
	}
	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.MaxTextureSize != 1024 {
		t.Errorf("expected max texture size 1024, got %d", cfg.Graphics.MaxTextureSize)
	}

	if cfg.Scene.ModelPath != "assets/head.obj" {
		t.Errorf("expected model path assets/head.obj, got %s", cfg.Scene.ModelPath)
	}
	if cfg.Scene.SphereSegmentsX != 32 || cfg.Scene.SphereSegmentsY != 16 {
		t.Errorf("expected 32x16 segments, got %dx%d", cfg.Scene.SphereSegmentsX, cfg.Scene.SphereSegmentsY)
	}

	if cfg.Orbit.Speed != 2.5 {
		t.Errorf("expected orbit speed 2.5, got %f", cfg.Orbit.Speed)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Orbit.AngleScale != 0.006 {
		t.Errorf("expected default angle scale, got %f", cfg.Orbit.AngleScale)
	}

	if cfg.Lighting.Light.Ambient != (mgl32.Vec3{0.1, 0.1, 0.1}) {
		t.Errorf("expected ambient 0.1, got %v", cfg.Lighting.Light.Ambient)
	}
	if cfg.Lighting.Light.Linear != 0.014 {
		t.Errorf("expected default linear term, got %f", cfg.Lighting.Light.Linear)
	}
	if cfg.Lighting.Material.Shininess != 32 {
		t.Errorf("expected shininess 32, got %f", cfg.Lighting.Material.Shininess)
	}

	if cfg.Camera.Position != (mgl32.Vec3{0, 1, 5}) {
		t.Errorf("expected camera at (0,1,5), got %v", cfg.Camera.Position)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "facelight.log" {
		t.Errorf("expected log file 'facelight.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Graphics.Backend = "vulkan" }},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative height", func(c *Config) { c.Graphics.Height = -1 }},
		{"negative texture size", func(c *Config) { c.Graphics.MaxTextureSize = -5 }},
		{"zero x segments", func(c *Config) { c.Scene.SphereSegmentsX = 0 }},
		{"zero y segments", func(c *Config) { c.Scene.SphereSegmentsY = 0 }},
		{"zero orbit scale", func(c *Config) { c.Orbit.Scale = 0 }},
		{"negative radius multiplier", func(c *Config) { c.Orbit.RadiusMultiplier = -1 }},
		{"negative speed step", func(c *Config) { c.Orbit.SpeedStep = -1 }},
		{"negative shininess", func(c *Config) { c.Lighting.Material.Shininess = -1 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"far before near", func(c *Config) { c.Camera.Far = c.Camera.Near }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoggerOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.Logging.LoggerOptions()
	if !opts.Console {
		t.Error("expected console output")
	}
	if opts.File.Path != "" {
		t.Errorf("expected no file output, got %s", opts.File.Path)
	}

	cfg.Logging.LogFile = "/tmp/facelight.log"
	opts = cfg.Logging.LoggerOptions()
	if opts.File.Path != "/tmp/facelight.log" {
		t.Errorf("expected file path, got %q", opts.File.Path)
	}
	if opts.File.MaxSizeMB != 10 || opts.File.MaxBackups != 3 {
		t.Errorf("rotation settings not carried over: %+v", opts.File)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Backend = "glfw"
	cfg.Orbit.Speed = 3
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	if loaded.Graphics.Backend != "glfw" || loaded.Orbit.Speed != 3 {
		t.Errorf("saved values lost: backend=%s speed=%f", loaded.Graphics.Backend, loaded.Orbit.Speed)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "backend flag",
			setup: func() { *flagBackend = "glfw" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Backend != "glfw" {
					t.Errorf("expected backend glfw, got %s", cfg.Graphics.Backend)
				}
			},
			teardown: func() { *flagBackend = "" },
		},
		{
			name:  "model flag",
			setup: func() { *flagModel = "other/head.obj" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.ModelPath != "other/head.obj" {
					t.Errorf("expected model other/head.obj, got %s", cfg.Scene.ModelPath)
				}
			},
			teardown: func() { *flagModel = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from the flag, height from the file.
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  sphere_segments_x: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}
