// Package input holds per-frame keyboard and mouse state independent of the
// window backend.
package input

// Key identifies a keyboard key used by the application.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyLeftCtrl
	KeyUp
	KeyDown
	KeyP
	KeyU
	KeyJ
	KeyH
	KeyF1
	KeyF12
	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:  "unknown",
	KeyEscape:   "escape",
	KeyW:        "w",
	KeyA:        "a",
	KeyS:        "s",
	KeyD:        "d",
	KeySpace:    "space",
	KeyLeftCtrl: "left-ctrl",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyP:        "p",
	KeyU:        "u",
	KeyJ:        "j",
	KeyH:        "h",
	KeyF1:       "f1",
	KeyF12:      "f12",
}

// String returns the key name.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// State is the input snapshot of one frame. Window backends fill it in Poll;
// the application reads it.
type State struct {
	down    [keyCount]bool
	pressed [keyCount]bool

	mouseDX, mouseDY float32
	scroll           float32

	quit    bool
	resized bool
	width   int
	height  int
}

// New creates an empty input state.
func New() *State {
	return &State{}
}

// BeginFrame clears per-frame data (presses, mouse motion, scroll, resize).
// Held keys persist.
func (s *State) BeginFrame() {
	s.pressed = [keyCount]bool{}
	s.mouseDX, s.mouseDY = 0, 0
	s.scroll = 0
	s.resized = false
}

// SetKey records a key transition. A transition from up to down also counts
// as a press for this frame.
func (s *State) SetKey(k Key, down bool) {
	if k <= KeyUnknown || k >= keyCount {
		return
	}
	if down && !s.down[k] {
		s.pressed[k] = true
	}
	s.down[k] = down
}

// AddMouseMotion accumulates relative mouse motion. dy is positive when the
// mouse moves up.
func (s *State) AddMouseMotion(dx, dy float32) {
	s.mouseDX += dx
	s.mouseDY += dy
}

// AddScroll accumulates vertical wheel motion.
func (s *State) AddScroll(dy float32) {
	s.scroll += dy
}

// SetResize records a new framebuffer size.
func (s *State) SetResize(width, height int) {
	s.resized = true
	s.width = width
	s.height = height
}

// RequestQuit marks the window as closing.
func (s *State) RequestQuit() {
	s.quit = true
}

// Down reports whether the key is held.
func (s *State) Down(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.down[k]
}

// Pressed reports whether the key went down this frame.
func (s *State) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.pressed[k]
}

// MouseDelta returns the mouse motion accumulated this frame.
func (s *State) MouseDelta() (dx, dy float32) {
	return s.mouseDX, s.mouseDY
}

// Scroll returns the wheel motion accumulated this frame.
func (s *State) Scroll() float32 {
	return s.scroll
}

// Resized returns the new size if the framebuffer changed this frame.
func (s *State) Resized() (width, height int, ok bool) {
	return s.width, s.height, s.resized
}

// Quit reports whether the window asked to close.
func (s *State) Quit() bool {
	return s.quit
}
