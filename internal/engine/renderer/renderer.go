// Package renderer provides OpenGL rendering of the lit scene.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/facelight/internal/engine/lighting"
	"github.com/Faultbox/facelight/internal/engine/renderer/shaders"
	"github.com/Faultbox/facelight/internal/engine/shader"
	"github.com/Faultbox/facelight/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor mgl32.Vec3
	// Wireframe draws the light marker with lines instead of filled triangles.
	Wireframe bool
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	face  *shader.Program
	light *shader.Program

	// 1x1 white texture bound when a model has no texture
	whiteTex uint32
}

// Drawable is a GPU mesh with its texture and model matrix.
type Drawable struct {
	Mesh    *GPUMesh
	Texture uint32
	Tint    mgl32.Vec3
	Model   mgl32.Mat4
}

// Frame is everything needed to draw one frame.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	ViewPos    mgl32.Vec3
	Light      lighting.PointLight
	Material   lighting.Material
	LightColor mgl32.Vec3
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	if r.face, err = shader.New("face", shaders.FaceVertexShader, shaders.FaceFragmentShader); err != nil {
		return nil, err
	}
	if r.light, err = shader.New("light", shaders.LightVertexShader, shaders.LightFragmentShader); err != nil {
		r.face.Delete()
		return nil, err
	}

	r.whiteTex = UploadTexture(whitePixel())

	logger.Debug("renderer created",
		zap.Uint32("faceProgram", r.face.ID),
		zap.Uint32("lightProgram", r.light.ID),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	DeleteTexture(r.whiteTex)
	r.whiteTex = 0
	if r.face != nil {
		r.face.Delete()
	}
	if r.light != nil {
		r.light.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// DrawLit draws a model with Phong lighting from the frame's point light.
func (r *Renderer) DrawLit(f Frame, d Drawable) {
	if d.Mesh == nil {
		return
	}
	p := r.face
	p.Use()
	p.SetMat4("projection", f.Projection)
	p.SetMat4("view", f.View)
	p.SetMat4("model", d.Model)
	p.SetVec3("viewPos", f.ViewPos)

	p.SetVec3("light.position", f.Light.Position)
	p.SetVec3("light.ambient", f.Light.Ambient)
	p.SetVec3("light.diffuse", f.Light.Diffuse)
	p.SetVec3("light.specular", f.Light.Specular)
	p.SetFloat("light.constant", f.Light.Constant)
	p.SetFloat("light.linear", f.Light.Linear)
	p.SetFloat("light.quadratic", f.Light.Quadratic)
	p.SetFloat("material.shininess", f.Material.Shininess)

	tint := d.Tint
	if tint == (mgl32.Vec3{}) {
		tint = mgl32.Vec3{1, 1, 1}
	}
	p.SetVec3("tint", tint)

	tex := d.Texture
	if tex == 0 {
		tex = r.whiteTex
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	p.SetInt("material.diffuse", 0)

	d.Mesh.Draw()
}

// DrawMarker draws a mesh in a flat color, as lines when wireframe is enabled.
func (r *Renderer) DrawMarker(f Frame, d Drawable) {
	if d.Mesh == nil {
		return
	}
	p := r.light
	p.Use()
	p.SetMat4("projection", f.Projection)
	p.SetMat4("view", f.View)
	p.SetMat4("model", d.Model)
	p.SetVec3("color", f.LightColor)

	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	d.Mesh.Draw()
	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// SetWireframe toggles line drawing for markers.
func (r *Renderer) SetWireframe(on bool) {
	r.config.Wireframe = on
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
