package geometry

// CubeNormalVertices is a unit cube with per-face normals, wound
// counter-clockwise so back faces can be culled.
func CubeNormalVertices() []float32 {
	return []float32{
		// back
		-0.5, -0.5, -0.5, 0, 0, -1,
		0.5, 0.5, -0.5, 0, 0, -1,
		0.5, -0.5, -0.5, 0, 0, -1,
		0.5, 0.5, -0.5, 0, 0, -1,
		-0.5, -0.5, -0.5, 0, 0, -1,
		-0.5, 0.5, -0.5, 0, 0, -1,
		// front
		-0.5, -0.5, 0.5, 0, 0, 1,
		0.5, -0.5, 0.5, 0, 0, 1,
		0.5, 0.5, 0.5, 0, 0, 1,
		0.5, 0.5, 0.5, 0, 0, 1,
		-0.5, 0.5, 0.5, 0, 0, 1,
		-0.5, -0.5, 0.5, 0, 0, 1,
		// left
		-0.5, 0.5, 0.5, -1, 0, 0,
		-0.5, 0.5, -0.5, -1, 0, 0,
		-0.5, -0.5, -0.5, -1, 0, 0,
		-0.5, -0.5, -0.5, -1, 0, 0,
		-0.5, -0.5, 0.5, -1, 0, 0,
		-0.5, 0.5, 0.5, -1, 0, 0,
		// right
		0.5, 0.5, 0.5, 1, 0, 0,
		0.5, -0.5, -0.5, 1, 0, 0,
		0.5, 0.5, -0.5, 1, 0, 0,
		0.5, -0.5, -0.5, 1, 0, 0,
		0.5, 0.5, 0.5, 1, 0, 0,
		0.5, -0.5, 0.5, 1, 0, 0,
		// bottom
		-0.5, -0.5, -0.5, 0, -1, 0,
		0.5, -0.5, -0.5, 0, -1, 0,
		0.5, -0.5, 0.5, 0, -1, 0,
		0.5, -0.5, 0.5, 0, -1, 0,
		-0.5, -0.5, 0.5, 0, -1, 0,
		-0.5, -0.5, -0.5, 0, -1, 0,
		// top
		-0.5, 0.5, -0.5, 0, 1, 0,
		0.5, 0.5, 0.5, 0, 1, 0,
		0.5, 0.5, -0.5, 0, 1, 0,
		0.5, 0.5, 0.5, 0, 1, 0,
		-0.5, 0.5, -0.5, 0, 1, 0,
		-0.5, 0.5, 0.5, 0, 1, 0,
	}
}

// CubeVertices is a unit cube with texture coordinates.
func CubeVertices() []float32 {
	return []float32{
		// back
		-0.5, -0.5, -0.5, 0, 0,
		0.5, 0.5, -0.5, 1, 1,
		0.5, -0.5, -0.5, 1, 0,
		0.5, 0.5, -0.5, 1, 1,
		-0.5, -0.5, -0.5, 0, 0,
		-0.5, 0.5, -0.5, 0, 1,
		// front
		-0.5, -0.5, 0.5, 0, 0,
		0.5, -0.5, 0.5, 1, 0,
		0.5, 0.5, 0.5, 1, 1,
		0.5, 0.5, 0.5, 1, 1,
		-0.5, 0.5, 0.5, 0, 1,
		-0.5, -0.5, 0.5, 0, 0,
		// left
		-0.5, -0.5, -0.5, 0, 1,
		-0.5, 0.5, 0.5, 1, 0,
		-0.5, 0.5, -0.5, 1, 1,
		-0.5, 0.5, 0.5, 1, 0,
		-0.5, -0.5, -0.5, 0, 1,
		-0.5, -0.5, 0.5, 0, 0,
		// right
		0.5, -0.5, -0.5, 0, 1,
		0.5, 0.5, -0.5, 1, 1,
		0.5, 0.5, 0.5, 1, 0,
		0.5, 0.5, 0.5, 1, 0,
		0.5, -0.5, 0.5, 0, 0,
		0.5, -0.5, -0.5, 0, 1,
		// bottom
		-0.5, -0.5, -0.5, 0, 1,
		0.5, -0.5, -0.5, 1, 1,
		0.5, -0.5, 0.5, 1, 0,
		0.5, -0.5, 0.5, 1, 0,
		-0.5, -0.5, 0.5, 0, 0,
		-0.5, -0.5, -0.5, 0, 1,
		// top
		-0.5, 0.5, -0.5, 0, 1,
		0.5, 0.5, 0.5, 1, 0,
		0.5, 0.5, -0.5, 1, 1,
		0.5, 0.5, 0.5, 1, 0,
		-0.5, 0.5, -0.5, 0, 1,
		-0.5, 0.5, 0.5, 0, 0,
	}
}

func SkyboxVertices() []float32 {
	return []float32{
		-1, 1, -1,
		-1, -1, -1,
		1, -1, -1,
		1, -1, -1,
		1, 1, -1,
		-1, 1, -1,

		-1, -1, 1,
		-1, -1, -1,
		-1, 1, -1,
		-1, 1, -1,
		-1, 1, 1,
		-1, -1, 1,

		1, -1, -1,
		1, -1, 1,
		1, 1, 1,
		1, 1, 1,
		1, 1, -1,
		1, -1, -1,

		-1, -1, 1,
		-1, 1, 1,
		1, 1, 1,
		1, 1, 1,
		1, -1, 1,
		-1, -1, 1,

		-1, 1, -1,
		1, 1, -1,
		1, 1, 1,
		1, 1, 1,
		-1, 1, 1,
		-1, 1, -1,

		-1, -1, -1,
		-1, -1, 1,
		1, -1, -1,
		1, -1, -1,
		-1, -1, 1,
		1, -1, 1,
	}
}

// PlaneVertices is a 10x10 floor just below the unit cube with the
// texture repeated twice along each axis.
func PlaneVertices() []float32 {
	return []float32{
		5, -0.5, 5, 2, 0,
		-5, -0.5, 5, 0, 0,
		-5, -0.5, -5, 0, 2,

		5, -0.5, 5, 2, 0,
		-5, -0.5, -5, 0, 2,
		5, -0.5, -5, 2, 2,
	}
}

// QuadVertices is a textured quad in the z=0 plane, drawn as a
// triangle strip.
func QuadVertices(xSize, ySize float32) []float32 {
	return []float32{
		-xSize, -ySize, 0, 0, 0,
		xSize, -ySize, 0, 1, 0,
		-xSize, ySize, 0, 0, 1,
		xSize, ySize, 0, 1, 1,
	}
}

// ScreenQuadVertices covers the whole viewport in normalised device
// coordinates. It is used to draw a framebuffer texture to the screen.
func ScreenQuadVertices() []float32 {
	return []float32{
		-1, 1, 0, 1,
		-1, -1, 0, 0,
		1, -1, 1, 0,

		-1, 1, 0, 1,
		1, -1, 1, 0,
		1, 1, 1, 1,
	}
}

// PointVertices are four coloured points, one per screen quadrant.
func PointVertices() []float32 {
	return []float32{
		-0.5, 0.5, 1, 0, 0,
		0.5, 0.5, 0, 1, 0,
		0.5, -0.5, 0, 0, 1,
		-0.5, -0.5, 1, 1, 0,
	}
}

// ColoredQuadVertices is a small quad of two triangles with a colour per
// vertex, used for the instanced quad grid.
func ColoredQuadVertices() []float32 {
	return []float32{
		-0.05, 0.05, 1, 0, 0,
		0.05, -0.05, 0, 1, 0,
		-0.05, -0.05, 0, 0, 1,

		-0.05, 0.05, 1, 0, 0,
		0.05, -0.05, 0, 1, 0,
		0.05, 0.05, 0, 1, 1,
	}
}
