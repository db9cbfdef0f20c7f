// Package geometry holds the static vertex data shared by the examples
// together with the attribute layouts used to upload it.
package geometry

const f32 = 4

// Attribute describes one vertex attribute in an interleaved float32 buffer.
type Attribute struct {
	Location uint32
	Size     int32
	Offset   int
}

type Layout struct {
	Attributes []Attribute
	// Stride in bytes
	Stride int32
}

// Floats is the number of float32 values per vertex.
func (l Layout) Floats() int {
	return int(l.Stride) / f32
}

// Count returns the number of vertices held in data.
func (l Layout) Count(data []float32) int32 {
	return int32(len(data) / l.Floats())
}

func newLayout(sizes ...int32) Layout {
	var l Layout
	offset := 0
	for i, size := range sizes {
		l.Attributes = append(l.Attributes, Attribute{
			Location: uint32(i),
			Size:     size,
			Offset:   offset * f32,
		})
		offset += int(size)
	}
	l.Stride = int32(offset * f32)
	return l
}

var (
	// PositionLayout is a single vec3 at location 0.
	PositionLayout = newLayout(3)
	// NormalLayout is position (0) and normal (1).
	NormalLayout = newLayout(3, 3)
	// TexLayout is position (0) and texture coordinate (1).
	TexLayout = newLayout(3, 2)
	// ModelLayout is position (0), normal (1) and texture coordinate (2).
	ModelLayout = newLayout(3, 3, 2)
	// ScreenLayout is a 2D position (0) and texture coordinate (1).
	ScreenLayout = newLayout(2, 2)
	// PointLayout is a 2D position (0) and colour (1).
	PointLayout = newLayout(2, 3)
)
