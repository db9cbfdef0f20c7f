// Package window opens the glfw window and OpenGL 3.3 core context the
// examples render into.
package window

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/glexamples/lib/config"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Window struct {
	*glfw.Window

	width, height int
	log           *slog.Logger
}

// New initialises glfw and makes the new window's context current on
// the calling thread, which must be locked to its OS thread.
func New(cfg *config.WindowCfg) (*Window, error) {
	w := &Window{log: slog.With("module", "window")}
	w.log.Debug("initializing window", "title", cfg.Title)

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, *cfg.Samples)

	width, height := cfg.Width, cfg.Height
	var monitor *glfw.Monitor
	if *cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		width, height = mode.Width, mode.Height
	}

	window, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	w.Window = window

	window.MakeContextCurrent()
	if *cfg.Vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	w.width, w.height = window.GetFramebufferSize()
	window.SetFramebufferSizeCallback(w.resized)
	return w, nil
}

// InitViewport sets the viewport to the framebuffer. It needs a
// loaded GL.
func (w *Window) InitViewport() {
	gl.Viewport(0, 0, int32(w.width), int32(w.height))
}

func (w *Window) resized(_ *glfw.Window, width, height int) {
	w.log.Debug("framebuffer resized", "width", width, "height", height)
	w.width, w.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (w *Window) FramebufferSize() (int, int) {
	return w.width, w.height
}

func (w *Window) Aspect() float32 {
	if w.height == 0 {
		return 1
	}
	return float32(w.width) / float32(w.height)
}

func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}

func Poll() {
	glfw.PollEvents()
}

func Time() float64 {
	return glfw.GetTime()
}
