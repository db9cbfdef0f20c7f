package app

import (
	"testing"

	"github.com/fosdem/glexamples/lib/camera"
	"github.com/fosdem/glexamples/lib/config"
	"github.com/fosdem/glexamples/lib/input"
	"github.com/fosdem/glexamples/lib/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCamera(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Position = []float32{1, 2, 3}
	cfg.Camera.Speed = 5
	cfg.Camera.Fov = 30

	c := newCamera(&cfg.Camera)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Position())
	assert.Equal(t, float32(5), c.Speed)
	assert.Equal(t, config.DefaultSensitivity, c.Sensitivity)
	assert.Equal(t, float32(30), c.Fov())
	assert.Equal(t, float32(-90), c.Yaw())
}

func TestCameraState(t *testing.T) {
	c := camera.New(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, -90, 0)
	s := cameraState(c)
	assert.Equal(t, [3]float32{0, 0, 3}, s.Position)
	assert.InDelta(t, -1, s.Front[2], 1e-6)
	assert.Equal(t, camera.DefaultFov, s.Fov)
}

func TestFrameTimingUsesWindowClock(t *testing.T) {
	now := 10.0
	a := &App{
		Camera: camera.New(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, -90, 0),
		Input:  input.New(2),
		Window: &window.Window{},
		Far:    Far,
		clock:  func() float64 { return now },
	}

	start := a.clock()
	now = 12.5
	f := a.nextFrame(0.25, a.since(start))
	assert.Equal(t, float32(2.5), f.Time)
	assert.Equal(t, float32(0.25), f.Dt)
	assert.Equal(t, a.Camera, f.Camera)
	assert.False(t, f.ModeChanged)
}
