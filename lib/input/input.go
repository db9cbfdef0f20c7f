// Package input collects keyboard, mouse and scroll state from glfw
// callbacks for the render loop to consume once per frame.
package input

import (
	"log/slog"

	"github.com/fosdem/glexamples/lib/camera"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var motionKeys = []struct {
	key    glfw.Key
	motion camera.Motion
}{
	{glfw.KeyW, camera.Forward},
	{glfw.KeyS, camera.Backward},
	{glfw.KeyA, camera.Left},
	{glfw.KeyD, camera.Right},
	{glfw.KeySpace, camera.Up},
	{glfw.KeyX, camera.Down},
}

type Input struct {
	pressed map[glfw.Key]struct{}

	primed       bool
	lastX, lastY float64
	dx, dy       float32
	scroll       float32
	focused      bool

	// Modes is the number of selectable modes, keys 1 to Modes
	Modes       int
	mode        int
	modeChanged bool

	closeRequested bool

	log *slog.Logger
}

func New(modes int) *Input {
	return &Input{
		pressed: make(map[glfw.Key]struct{}),
		focused: true,
		Modes:   modes,
		log:     slog.With("module", "input"),
	}
}

func (in *Input) KeyEvent(key glfw.Key, action glfw.Action) {
	switch action {
	case glfw.Press:
		in.pressed[key] = struct{}{}
		in.keyPressed(key)
	case glfw.Release:
		delete(in.pressed, key)
	}
}

func (in *Input) keyPressed(key glfw.Key) {
	if key == glfw.KeyEscape {
		in.log.Info("told to quit, exiting")
		in.closeRequested = true
		return
	}
	if key >= glfw.Key1 && key <= glfw.Key9 {
		selected := int(key - glfw.Key1)
		if selected >= in.Modes {
			in.log.Debug("mode out of range", "mode", selected+1, "modes", in.Modes)
			return
		}
		in.mode = selected
		in.modeChanged = true
	}
}

// CursorEvent records a cursor position. The first event after creation
// or refocus only sets the reference point.
func (in *Input) CursorEvent(x, y float64) {
	if !in.focused {
		return
	}
	if !in.primed {
		in.lastX, in.lastY = x, y
		in.primed = true
		return
	}
	in.dx += float32(x - in.lastX)
	// window y grows downwards
	in.dy += float32(in.lastY - y)
	in.lastX, in.lastY = x, y
}

func (in *Input) ScrollEvent(yoffset float64) {
	in.scroll -= float32(yoffset)
}

func (in *Input) FocusEvent(focused bool) {
	in.focused = focused
	if !focused {
		in.primed = false
	}
}

func (in *Input) Pressed(key glfw.Key) bool {
	_, ok := in.pressed[key]
	return ok
}

// Motions returns the camera motions of the currently held keys in a
// fixed order.
func (in *Input) Motions() []camera.Motion {
	var motions []camera.Motion
	for _, mk := range motionKeys {
		if in.Pressed(mk.key) {
			motions = append(motions, mk.motion)
		}
	}
	return motions
}

func (in *Input) TakeMouseDelta() (dx, dy float32) {
	dx, dy = in.dx, in.dy
	in.dx, in.dy = 0, 0
	return dx, dy
}

func (in *Input) TakeScroll() float32 {
	s := in.scroll
	in.scroll = 0
	return s
}

func (in *Input) CloseRequested() bool {
	return in.closeRequested
}

func (in *Input) Mode() int {
	return in.mode
}

// TakeModeChange reports whether a number key picked a mode since the
// last call.
func (in *Input) TakeModeChange() (int, bool) {
	changed := in.modeChanged
	in.modeChanged = false
	return in.mode, changed
}
