package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFov         float32 = 45.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.05

	MinFov float32 = 1.0
	MaxFov float32 = 45.0

	maxPitch float32 = 89.0
)

type Motion int

const (
	Forward Motion = iota
	Backward
	Left
	Right
	Up
	Down
)

func (m Motion) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Camera is a free-flying camera driven by Euler angles. Yaw and pitch
// are kept in degrees, pitch is clamped so the view never flips over
// the world up axis.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32
	fov   float32

	Speed       float32
	Sensitivity float32
	MaxFov      float32
}

// New builds a camera looking along yaw and pitch. The initial pitch is
// held to the same ±89° limit that Look enforces.
func New(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		position:    position,
		worldUp:     worldUp,
		yaw:         yaw,
		pitch:       clampPitch(pitch),
		fov:         DefaultFov,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		MaxFov:      MaxFov,
	}
	c.updateVectors()
	return c
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// Projection returns a perspective projection using the current field
// of view.
func (c *Camera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, near, far)
}

// Move translates the camera along the sum of the requested directions.
// The sum is normalised, so moving diagonally is not faster than moving
// straight, and opposing directions cancel out.
func (c *Camera) Move(directions []Motion, dt float32) {
	var velocity mgl32.Vec3
	for _, d := range directions {
		switch d {
		case Forward:
			velocity = velocity.Add(c.front)
		case Backward:
			velocity = velocity.Sub(c.front)
		case Right:
			velocity = velocity.Add(c.right)
		case Left:
			velocity = velocity.Sub(c.right)
		case Up:
			velocity = velocity.Add(c.up)
		case Down:
			velocity = velocity.Sub(c.up)
		}
	}
	if velocity.Len() == 0 {
		return
	}
	c.position = c.position.Add(velocity.Normalize().Mul(c.Speed * dt))
}

func (c *Camera) Look(dx, dy float32) {
	c.yaw += c.Sensitivity * dx
	c.pitch = clampPitch(c.pitch + c.Sensitivity*dy)
	c.updateVectors()
}

func (c *Camera) Zoom(delta float32) {
	c.fov = mgl32.Clamp(c.fov+delta, MinFov, c.MaxFov)
}

func (c *Camera) SetFov(fov float32) {
	c.fov = mgl32.Clamp(fov, MinFov, c.MaxFov)
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Fov() float32         { return c.fov }

func (c *Camera) updateVectors() {
	c.front = frontFromAngles(c.yaw, c.pitch)
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func frontFromAngles(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}.Normalize()
}

func clampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, -maxPitch, maxPitch)
}
