package camera_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/fosdem/glexamples/lib/camera"
)

const eps = 1e-5

func newDefault() *camera.Camera {
	return camera.New(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, -90, 0)
}

func assertVec(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	assert.Truef(t, expected.ApproxEqualThreshold(actual, eps), "expected %v, got %v", expected, actual)
}

func TestNewBasis(t *testing.T) {
	c := newDefault()

	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVec(t, mgl32.Vec3{1, 0, 0}, c.Right())
	assertVec(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, camera.DefaultFov, c.Fov())
}

func TestViewMatrixLooksDownNegativeZ(t *testing.T) {
	c := newDefault()
	view := c.ViewMatrix()

	// the camera position maps to the origin in view space
	origin := view.Mul4x1(c.Position().Vec4(1)).Vec3()
	assertVec(t, mgl32.Vec3{}, origin)

	// a point in front of the camera ends up on the negative z axis
	ahead := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assertVec(t, mgl32.Vec3{0, 0, -3}, ahead)
}

func TestMove(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		c := newDefault()
		c.Move([]camera.Motion{camera.Forward}, 1)
		assertVec(t, mgl32.Vec3{0, 0, 3 - camera.DefaultSpeed}, c.Position())
	})

	t.Run("diagonal is normalised", func(t *testing.T) {
		c := newDefault()
		c.Move([]camera.Motion{camera.Forward, camera.Right}, 1)
		moved := c.Position().Sub(mgl32.Vec3{0, 0, 3})
		assert.InDelta(t, camera.DefaultSpeed, moved.Len(), eps)
	})

	t.Run("opposing directions cancel", func(t *testing.T) {
		c := newDefault()
		c.Move([]camera.Motion{camera.Left, camera.Right, camera.Up, camera.Down}, 1)
		assertVec(t, mgl32.Vec3{0, 0, 3}, c.Position())
	})

	t.Run("scales with delta time", func(t *testing.T) {
		c := newDefault()
		c.Move([]camera.Motion{camera.Up}, 0.5)
		assertVec(t, mgl32.Vec3{0, camera.DefaultSpeed / 2, 3}, c.Position())
	})

	t.Run("no directions", func(t *testing.T) {
		c := newDefault()
		c.Move(nil, 10)
		assertVec(t, mgl32.Vec3{0, 0, 3}, c.Position())
	})
}

func TestLook(t *testing.T) {
	t.Run("yaw turns right", func(t *testing.T) {
		c := newDefault()
		c.Look(90/camera.DefaultSensitivity, 0)
		assert.InDelta(t, 0, c.Yaw(), eps)
		assertVec(t, mgl32.Vec3{1, 0, 0}, c.Front())
	})

	t.Run("pitch is clamped", func(t *testing.T) {
		c := newDefault()
		c.Look(0, 10000)
		assert.Equal(t, float32(89), c.Pitch())
		c.Look(0, -100000)
		assert.Equal(t, float32(-89), c.Pitch())
	})

	t.Run("basis stays orthonormal", func(t *testing.T) {
		c := newDefault()
		c.Look(123, 456)
		assert.InDelta(t, 1, c.Front().Len(), eps)
		assert.InDelta(t, 1, c.Right().Len(), eps)
		assert.InDelta(t, 1, c.Up().Len(), eps)
		assert.InDelta(t, 0, c.Front().Dot(c.Right()), eps)
		assert.InDelta(t, 0, c.Front().Dot(c.Up()), eps)
		assert.InDelta(t, 0, c.Right().Dot(c.Up()), eps)
	})
}

func TestZoom(t *testing.T) {
	c := newDefault()

	c.Zoom(-10)
	assert.Equal(t, float32(35), c.Fov())

	c.Zoom(-100)
	assert.Equal(t, camera.MinFov, c.Fov())

	c.Zoom(100)
	assert.Equal(t, camera.MaxFov, c.Fov())
}

func TestMotionString(t *testing.T) {
	assert.Equal(t, "forward", camera.Forward.String())
	assert.Equal(t, "down", camera.Down.String())
	assert.Equal(t, "unknown", camera.Motion(42).String())
}

func TestNewClampsPitch(t *testing.T) {
	up := camera.New(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, -90, 120)
	assert.Equal(t, float32(89), up.Pitch())
	assert.Less(t, up.Front().Dot(mgl32.Vec3{0, 1, 0}), float32(1))

	down := camera.New(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, -90, -95)
	assert.Equal(t, float32(-89), down.Pitch())

	level := camera.New(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, -90, 30)
	assert.Equal(t, float32(30), level.Pitch())
}
