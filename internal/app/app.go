// Package app implements the demo's frame loop and scene state.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/facelight/internal/config"
	"github.com/Faultbox/facelight/internal/engine/input"
	"github.com/Faultbox/facelight/internal/engine/model"
	"github.com/Faultbox/facelight/internal/engine/renderer"
	"github.com/Faultbox/facelight/internal/engine/screenshot"
	"github.com/Faultbox/facelight/internal/engine/window"
	"github.com/Faultbox/facelight/internal/logger"
)

const title = "Face with lighting"

// App owns the window, GPU resources and scene state.
type App struct {
	cfg *config.Config

	window   window.Window
	renderer *renderer.Renderer
	input    *input.State
	state    *State
	shots    *screenshot.Writer

	sphere  *renderer.GPUMesh
	head    *renderer.GPUMesh
	headTex uint32
	running bool
}

// New creates the window and renderer and uploads the scene meshes.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.String("backend", cfg.Graphics.Backend),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	// Build the sphere before touching the GPU so bad settings fail fast.
	sphereMesh, err := model.NewSphere(cfg.Scene.SphereSegmentsX, cfg.Scene.SphereSegmentsY)
	if err != nil {
		return nil, fmt.Errorf("generating light sphere: %w", err)
	}

	a := &App{
		cfg:   cfg,
		input: input.New(),
		state: NewState(cfg.Orbit, cfg.Camera, cfg.Lighting, cfg.Scene.Wireframe),
		shots: screenshot.NewWriter(cfg.Graphics.ScreenshotDir, "facelight"),
	}

	a.window, err = window.New(window.Config{
		Backend:      cfg.Graphics.Backend,
		Title:        title,
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
		CaptureMouse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context created by the window.
	fbw, fbh := a.window.FramebufferSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      fbw,
		Height:     fbh,
		ClearColor: cfg.Graphics.ClearColor,
		Wireframe:  cfg.Scene.Wireframe,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if a.sphere, err = renderer.UploadMesh(sphereMesh); err != nil {
		a.Close()
		return nil, fmt.Errorf("uploading light sphere: %w", err)
	}
	logger.Debug("light sphere ready",
		zap.Uint32("xSegments", cfg.Scene.SphereSegmentsX),
		zap.Uint32("ySegments", cfg.Scene.SphereSegmentsY),
		zap.Int("triangles", sphereMesh.TriangleCount()),
	)

	if err := a.loadHead(); err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("initialized successfully")
	return a, nil
}

// loadHead uploads the head model. A missing model file is not fatal: the
// scene then shows only the light sphere.
func (a *App) loadHead() error {
	path := a.cfg.Scene.ModelPath
	if path == "" {
		logger.Warn("no head model configured")
		return nil
	}

	asset, err := LoadHead(path, a.cfg.Scene.TexturePath, a.cfg.Graphics.MaxTextureSize)
	if err != nil {
		if isMissing(err) {
			logger.Warn("head model not found, rendering light only", zap.String("path", path))
			return nil
		}
		return fmt.Errorf("loading head model: %w", err)
	}

	if a.head, err = renderer.UploadMesh(asset.Mesh); err != nil {
		return fmt.Errorf("uploading head model: %w", err)
	}
	if asset.Texture != nil {
		a.headTex = renderer.UploadTexture(asset.Texture)
	}
	if a.state.ApplyModelShininess(asset.Shininess) {
		logger.Debug("shininess taken from model", zap.Float32("shininess", a.state.Lighting.Material.Shininess))
	}
	return nil
}

// Run starts the main loop and returns when the window closes or Escape is held.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Input
		a.window.Poll(a.input)
		if w, h, ok := a.input.Resized(); ok {
			a.renderer.Resize(w, h)
		}

		// 2. Update
		if a.state.Update(a.input, dt) {
			a.running = false
			break
		}
		a.renderer.SetWireframe(a.state.Wireframe)

		// 3. Render
		a.render()
		if a.input.Pressed(input.KeyF12) {
			a.saveScreenshot()
		}

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			a.window.SetTitle(fmt.Sprintf("%s - %.0f FPS", title, fps))
			logger.Debug("fps",
				zap.Float64("fps", fps),
				zap.Float32("angle", a.state.Orbit.Angle()),
				zap.Float32("speed", a.state.Orbit.Speed()),
				zap.Float32("radius", a.state.Orbit.Radius()),
				zap.Bool("paused", a.state.Orbit.Paused()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("main loop stopped", zap.Uint64("frames", a.state.Orbit.Frames()))
	return nil
}

// render draws the head lit by the orbiting light, then the light marker.
func (a *App) render() {
	cam := a.state.Camera
	frame := renderer.Frame{
		View:       cam.ViewMatrix(),
		Projection: cam.Projection(a.renderer.Aspect()),
		ViewPos:    cam.Position,
		Light:      a.state.Light(),
		Material:   a.state.Lighting.Material,
		LightColor: a.cfg.Scene.LightColor,
	}
	scale := a.cfg.Orbit.Scale

	a.renderer.Begin()
	if a.head != nil {
		a.renderer.DrawLit(frame, renderer.Drawable{
			Mesh:    a.head,
			Texture: a.headTex,
			Model:   HeadTransform(a.cfg.Scene.ModelScale, scale),
		})
	}
	a.renderer.DrawMarker(frame, renderer.Drawable{
		Mesh:  a.sphere,
		Tint:  mgl32.Vec3{1, 1, 1},
		Model: SphereTransform(frame.Light.Position, scale),
	})
	a.renderer.End()
}

// saveScreenshot writes the rendered back buffer. Failures are logged only.
func (a *App) saveScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	img, err := screenshot.FromPixels(pixels, w, h)
	if err == nil {
		var path string
		if path, err = a.shots.Save(img); err == nil {
			logger.Info("screenshot saved", zap.String("path", path))
			return
		}
	}
	logger.Warn("screenshot failed", zap.Error(err))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	logger.Info("shutting down")

	if a.head != nil {
		a.head.Delete()
		a.head = nil
	}
	if a.headTex != 0 {
		renderer.DeleteTexture(a.headTex)
		a.headTex = 0
	}
	if a.sphere != nil {
		a.sphere.Delete()
		a.sphere = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
