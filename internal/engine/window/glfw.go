package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/facelight/internal/engine/input"
	"github.com/Faultbox/facelight/internal/logger"
)

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape:      input.KeyEscape,
	glfw.KeyW:           input.KeyW,
	glfw.KeyA:           input.KeyA,
	glfw.KeyS:           input.KeyS,
	glfw.KeyD:           input.KeyD,
	glfw.KeySpace:       input.KeySpace,
	glfw.KeyLeftControl: input.KeyLeftCtrl,
	glfw.KeyUp:          input.KeyUp,
	glfw.KeyDown:        input.KeyDown,
	glfw.KeyP:           input.KeyP,
	glfw.KeyU:           input.KeyU,
	glfw.KeyJ:           input.KeyJ,
	glfw.KeyH:           input.KeyH,
	glfw.KeyF1:          input.KeyF1,
	glfw.KeyF12:         input.KeyF12,
}

// glfwWindow wraps a GLFW window. Callbacks write into the input state passed
// to the current Poll call.
type glfwWindow struct {
	window *glfw.Window
	in     *input.State

	lastX, lastY float64
	firstMouse   bool
}

func newGLFWWindow(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{window: win, in: input.New(), firstMouse: true}

	if cfg.CaptureMouse {
		win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := glfwKeys[key]
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			w.in.SetKey(k, true)
		case glfw.Release:
			w.in.SetKey(k, false)
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.firstMouse {
			w.lastX, w.lastY = x, y
			w.firstMouse = false
		}
		// reversed since y-coordinates go from top to bottom
		w.in.AddMouseMotion(float32(x-w.lastX), float32(w.lastY-y))
		w.lastX, w.lastY = x, y
	})

	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.in.AddScroll(float32(yoff))
	})

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.in.SetResize(width, height)
	})

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *glfwWindow) Poll(in *input.State) {
	in.BeginFrame()
	w.in = in
	glfw.PollEvents()
	if w.window.ShouldClose() {
		in.RequestQuit()
	}
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *glfwWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendGLFW))
	w.window.Destroy()
	glfw.Terminate()
}
