// Package app wires window, input, camera and the ambient services into
// the render loop shared by every example.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fosdem/glexamples/lib/api"
	"github.com/fosdem/glexamples/lib/camera"
	"github.com/fosdem/glexamples/lib/config"
	"github.com/fosdem/glexamples/lib/input"
	applog "github.com/fosdem/glexamples/lib/log"
	"github.com/fosdem/glexamples/lib/metrics"
	"github.com/fosdem/glexamples/lib/rendering"
	"github.com/fosdem/glexamples/lib/rendering/shaders"
	"github.com/fosdem/glexamples/lib/stats"
	"github.com/fosdem/glexamples/lib/utils"
	"github.com/fosdem/glexamples/lib/window"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	Near float32 = 0.1
	Far  float32 = 100
)

// Frame is what an example needs to draw one frame.
type Frame struct {
	Dt   float32
	Time float32

	View       mgl32.Mat4
	Projection mgl32.Mat4
	Camera     *camera.Camera

	Width, Height int

	Mode        int
	ModeChanged bool
}

type App struct {
	Name    string
	Config  *config.Config
	Window  *window.Window
	Input   *input.Input
	Camera  *camera.Camera
	Shaders *shaders.Library
	Stats   *stats.Collector

	// Far is the far plane of the projection, examples with large
	// scenes raise it
	Far float32

	api     *api.Api
	clock   func() float64
	watcher *shaders.Watcher
	metrics metrics.FrameMetrics
	clear   [4]float32
	log     *slog.Logger
}

// New opens the window and sets up everything around it. modes is the
// number of modes selectable with the number keys.
func New(name string, cfg *config.Config, modes int) (*App, error) {
	err := applog.Setup(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	a := &App{
		Name:    name,
		Config:  cfg,
		Far:     Far,
		clock:   window.Time,
		log:     applog.Module("app"),
		metrics: metrics.NewFrameMetrics(name),
	}
	a.log.Info(fmt.Sprintf("starting %s", name))

	if cfg.Window.Title == config.DefaultTitle {
		cfg.Window.Title = fmt.Sprintf("%s: %s", config.DefaultTitle, name)
	}
	a.Window, err = window.New(&cfg.Window)
	if err != nil {
		return nil, err
	}

	err = rendering.Init()
	if err != nil {
		a.Window.Destroy()
		return nil, fmt.Errorf("could not initialise renderer: %w", err)
	}
	a.Window.InitViewport()
	gl.Enable(gl.DEPTH_TEST)
	if *cfg.Window.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}

	r, g, b, alpha := utils.ColourFloats(utils.ColourParse(cfg.ClearColour))
	a.clear = [4]float32{r, g, b, alpha}

	a.Input = input.New(modes)
	a.Input.Attach(a.Window.Window)

	a.Camera = newCamera(&cfg.Camera)

	a.Shaders, err = shaders.NewLibrary(string(cfg.Shaders.Dir))
	if err != nil {
		a.Close()
		return nil, err
	}
	if cfg.Shaders.Watch {
		a.watcher, err = shaders.Watch(string(cfg.Shaders.Dir))
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("could not watch shaders: %w", err)
		}
	}

	a.Stats = stats.New()
	a.api = api.ServeInBackground(cfg.Api, a.Stats)
	return a, nil
}

func newCamera(cfg *config.CameraCfg) *camera.Camera {
	pos := mgl32.Vec3{cfg.Position[0], cfg.Position[1], cfg.Position[2]}
	c := camera.New(pos, mgl32.Vec3{0, 1, 0}, *cfg.Yaw, cfg.Pitch)
	c.Speed = cfg.Speed
	c.Sensitivity = cfg.Sensitivity
	c.SetFov(cfg.Fov)
	return c
}

// Run drives the render loop until the window is closed, calling frame
// once per iteration after the screen has been cleared.
func (a *App) Run(frame func(f *Frame)) {
	var deltaTimer utils.DeltaTimer
	start := a.clock()

	for !a.Window.ShouldClose() {
		dt := deltaTimer.Next()
		f := a.nextFrame(utils.Seconds(dt), a.since(start))

		gl.ClearColor(a.clear[0], a.clear[1], a.clear[2], a.clear[3])
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

		drawCalls := rendering.DrawCallCounter
		frame(f)
		a.Window.SwapBuffers()

		// Maintenance
		window.Poll()
		a.Stats.Update(rendering.TextureUploadCounter, rendering.DrawCallCounter)
		a.Stats.SetCamera(cameraState(a.Camera))
		a.metrics.ObserveFrame(dt.Seconds(), rendering.DrawCallCounter-drawCalls)
		a.reloadShaders()
	}
}

// since returns the seconds elapsed on the window clock since start.
func (a *App) since(start float64) float32 {
	return float32(a.clock() - start)
}

func (a *App) nextFrame(dt, total float32) *Frame {
	a.Camera.Move(a.Input.Motions(), dt)
	if dx, dy := a.Input.TakeMouseDelta(); dx != 0 || dy != 0 {
		a.Camera.Look(dx, dy)
	}
	if s := a.Input.TakeScroll(); s != 0 {
		a.Camera.Zoom(s)
	}
	mode, changed := a.Input.TakeModeChange()

	width, height := a.Window.FramebufferSize()
	return &Frame{
		Dt:          dt,
		Time:        total,
		View:        a.Camera.ViewMatrix(),
		Projection:  a.Camera.Projection(a.Window.Aspect(), Near, a.Far),
		Camera:      a.Camera,
		Width:       width,
		Height:      height,
		Mode:        mode,
		ModeChanged: changed,
	}
}

func (a *App) reloadShaders() {
	if a.watcher == nil {
		return
	}
	changed := a.watcher.Pending()
	if len(changed) == 0 {
		return
	}
	n := a.Shaders.Reload(changed)
	a.metrics.ShaderReloads.Add(float64(n))
}

func cameraState(c *camera.Camera) stats.CameraState {
	return stats.CameraState{
		Position: c.Position(),
		Front:    c.Front(),
		Yaw:      c.Yaw(),
		Pitch:    c.Pitch(),
		Fov:      c.Fov(),
	}
}

// Close releases everything New set up. Resources created by the
// example itself must be freed before.
func (a *App) Close() {
	if a.api != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := a.api.Shutdown(ctx)
		cancel()
		if err != nil {
			a.log.Warn("could not stop web server", "err", err)
		}
	}
	if a.watcher != nil {
		err := a.watcher.Close()
		if err != nil {
			a.log.Warn("could not stop shader watcher", "err", err)
		}
	}
	if a.Shaders != nil {
		for _, p := range a.Shaders.Programs() {
			p.Delete()
		}
	}
	input.Detach(a.Window.Window)
	a.Window.Destroy()
}
