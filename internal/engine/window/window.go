// Package window handles window and OpenGL context creation.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/facelight/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Supported backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Backend    string
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	// CaptureMouse hides the cursor and reports relative motion.
	CaptureMouse bool
}

// Window is an OS window with a current OpenGL 4.1 core context.
type Window interface {
	// Poll processes pending OS events into in. It calls in.BeginFrame first.
	Poll(in *input.State)
	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (int, int)
	// SetTitle sets the window title.
	SetTitle(title string)
	// Close destroys the window and shuts the backend down.
	Close()
}

// New creates a window using the configured backend.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		w, err := newSDLWindow(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case BackendGLFW:
		w, err := newGLFWWindow(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
