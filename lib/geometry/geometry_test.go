package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func vec3At(data []float32, floats, vertex, offset int) mgl32.Vec3 {
	i := vertex*floats + offset
	return mgl32.Vec3{data[i], data[i+1], data[i+2]}
}

func TestLayouts(t *testing.T) {
	assert.Equal(t, int32(12), PositionLayout.Stride)
	assert.Equal(t, int32(24), NormalLayout.Stride)
	assert.Equal(t, int32(20), TexLayout.Stride)
	assert.Equal(t, int32(32), ModelLayout.Stride)
	assert.Equal(t, int32(16), ScreenLayout.Stride)
	assert.Equal(t, int32(20), PointLayout.Stride)

	assert.Equal(t, []Attribute{
		{Location: 0, Size: 3, Offset: 0},
		{Location: 1, Size: 3, Offset: 12},
		{Location: 2, Size: 2, Offset: 24},
	}, ModelLayout.Attributes)
}

func TestVertexCounts(t *testing.T) {
	tests := []struct {
		name   string
		data   []float32
		layout Layout
		count  int32
	}{
		{"cube with normals", CubeNormalVertices(), NormalLayout, 36},
		{"textured cube", CubeVertices(), TexLayout, 36},
		{"skybox", SkyboxVertices(), PositionLayout, 36},
		{"plane", PlaneVertices(), TexLayout, 6},
		{"quad", QuadVertices(1, 1), TexLayout, 4},
		{"screen quad", ScreenQuadVertices(), ScreenLayout, 6},
		{"points", PointVertices(), PointLayout, 4},
		{"coloured quad", ColoredQuadVertices(), PointLayout, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, len(tt.data)%tt.layout.Floats(), "data does not fill whole vertices")
			assert.Equal(t, tt.count, tt.layout.Count(tt.data))
		})
	}
}

// The face normal derived from the winding order must match the stored
// normal, otherwise culling and lighting disagree.
func TestCubeNormalsMatchWinding(t *testing.T) {
	data := CubeNormalVertices()
	floats := NormalLayout.Floats()

	for tri := 0; tri < 12; tri++ {
		a := vec3At(data, floats, tri*3, 0)
		b := vec3At(data, floats, tri*3+1, 0)
		c := vec3At(data, floats, tri*3+2, 0)
		normal := vec3At(data, floats, tri*3, 3)

		winding := b.Sub(a).Cross(c.Sub(a)).Normalize()
		assert.Truef(t, winding.ApproxEqualThreshold(normal, 1e-6), "triangle %d: winding %v, normal %v", tri, winding, normal)
		assert.InDelta(t, 1, normal.Len(), 1e-6)
	}
}

func TestCubeFacesPointOutwards(t *testing.T) {
	data := CubeVertices()
	floats := TexLayout.Floats()

	for tri := 0; tri < 12; tri++ {
		a := vec3At(data, floats, tri*3, 0)
		b := vec3At(data, floats, tri*3+1, 0)
		c := vec3At(data, floats, tri*3+2, 0)
		centre := a.Add(b).Add(c).Mul(1.0 / 3)

		winding := b.Sub(a).Cross(c.Sub(a))
		assert.Greaterf(t, winding.Dot(centre), float32(0), "triangle %d faces inwards", tri)
	}
}

func TestSkyboxSpansUnitCube(t *testing.T) {
	data := SkyboxVertices()
	for _, v := range data {
		assert.True(t, v == 1 || v == -1)
	}
}

func TestQuadVertices(t *testing.T) {
	data := QuadVertices(2, 0.5)
	floats := TexLayout.Floats()

	assert.Equal(t, mgl32.Vec3{-2, -0.5, 0}, vec3At(data, floats, 0, 0))
	assert.Equal(t, mgl32.Vec3{2, 0.5, 0}, vec3At(data, floats, 3, 0))
}
