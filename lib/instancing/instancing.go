// Package instancing generates per-instance data for the instanced
// drawing examples.
package instancing

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

var rotationAxis = mgl32.Vec3{0.4, 0.6, 0.8}.Normalize()

// RingTransforms places count instances on a ring of the given radius,
// each displaced by up to offset, randomly scaled and rotated. The same
// seed always yields the same transforms.
func RingTransforms(count int, radius, offset float32, seed int64) []mgl32.Mat4 {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	// displacement is drawn in hundredths; below one step there is none
	steps := int(2 * offset * 100)
	displace := func() float32 {
		if steps <= 0 {
			return 0
		}
		return float32(rng.IntN(steps))/100 - offset
	}

	transforms := make([]mgl32.Mat4, count)
	for i := range transforms {
		angle := float64(i) / float64(count) * 2 * math.Pi

		x := float32(math.Sin(angle))*radius + displace()
		y := displace() * 0.4
		z := float32(math.Cos(angle))*radius + displace()

		scale := float32(rng.IntN(20))/100 + 0.05
		rotation := mgl32.DegToRad(float32(rng.IntN(360)))

		transforms[i] = mgl32.Translate3D(x, y, z).
			Mul4(mgl32.HomogRotate3D(rotation, rotationAxis)).
			Mul4(mgl32.Scale3D(scale, scale, scale))
	}
	return transforms
}

// GridOffsets lays out n*n offsets in normalised device coordinates,
// row by row from the bottom left, pulled in by margin.
func GridOffsets(n int, margin float32) []mgl32.Vec2 {
	offsets := make([]mgl32.Vec2, 0, n*n)
	step := float32(2) / float32(n)
	for row := range n {
		for col := range n {
			offsets = append(offsets, mgl32.Vec2{
				-1 + float32(col)*step + margin,
				-1 + float32(row)*step + margin,
			})
		}
	}
	return offsets
}
