package rendering

import (
	"github.com/fosdem/glexamples/lib/geometry"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const f32 = 4

// VertexArray owns a VAO together with the buffers bound to it.
type VertexArray struct {
	VAO uint32
	VBO uint32
	EBO uint32

	// Count is the number of vertices, or indices for indexed arrays
	Count int32

	instanceBuffers []uint32
}

func NewVertexArray(data []float32, layout geometry.Layout) *VertexArray {
	v := &VertexArray{Count: layout.Count(data)}

	gl.GenVertexArrays(1, &v.VAO)
	gl.GenBuffers(1, &v.VBO)

	gl.BindVertexArray(v.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*f32, gl.Ptr(data), gl.STATIC_DRAW)
	setupAttributes(layout)

	gl.BindVertexArray(0)
	return v
}

func NewIndexedVertexArray(data []float32, indices []uint32, layout geometry.Layout) *VertexArray {
	v := &VertexArray{Count: int32(len(indices))}

	gl.GenVertexArrays(1, &v.VAO)
	gl.GenBuffers(1, &v.VBO)
	gl.GenBuffers(1, &v.EBO)

	gl.BindVertexArray(v.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*f32, gl.Ptr(data), gl.STATIC_DRAW)
	setupAttributes(layout)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, v.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return v
}

func setupAttributes(layout geometry.Layout) {
	for _, a := range layout.Attributes {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, layout.Stride, uintptr(a.Offset))
		gl.EnableVertexAttribArray(a.Location)
	}
}

// AddInstanceMatrices uploads one model matrix per instance. A mat4
// attribute occupies four consecutive locations starting at location.
func (v *VertexArray) AddInstanceMatrices(location uint32, matrices []mgl32.Mat4) {
	if len(matrices) == 0 {
		return
	}
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	v.instanceBuffers = append(v.instanceBuffers, vbo)

	gl.BindVertexArray(v.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(matrices)*16*f32, gl.Ptr(&matrices[0][0]), gl.STATIC_DRAW)

	stride := int32(16 * f32)
	for col := range uint32(4) {
		gl.EnableVertexAttribArray(location + col)
		gl.VertexAttribPointerWithOffset(location+col, 4, gl.FLOAT, false, stride, uintptr(col*4*f32))
		gl.VertexAttribDivisor(location+col, 1)
	}
	gl.BindVertexArray(0)
}

// AddInstanceOffsets uploads one vec2 per instance at location.
func (v *VertexArray) AddInstanceOffsets(location uint32, offsets []mgl32.Vec2) {
	if len(offsets) == 0 {
		return
	}
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	v.instanceBuffers = append(v.instanceBuffers, vbo)

	gl.BindVertexArray(v.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(offsets)*2*f32, gl.Ptr(&offsets[0][0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(location)
	gl.VertexAttribPointerWithOffset(location, 2, gl.FLOAT, false, 2*f32, 0)
	gl.VertexAttribDivisor(location, 1)
	gl.BindVertexArray(0)
}

func (v *VertexArray) Draw(mode uint32) {
	gl.BindVertexArray(v.VAO)
	if v.EBO != 0 {
		gl.DrawElements(mode, v.Count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(mode, 0, v.Count)
	}
	DrawCallCounter++
}

func (v *VertexArray) DrawInstanced(mode uint32, instances int32) {
	gl.BindVertexArray(v.VAO)
	if v.EBO != 0 {
		gl.DrawElementsInstanced(mode, v.Count, gl.UNSIGNED_INT, gl.PtrOffset(0), instances)
	} else {
		gl.DrawArraysInstanced(mode, 0, v.Count, instances)
	}
	DrawCallCounter++
}

func (v *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &v.VAO)
	buffers := append([]uint32{v.VBO}, v.instanceBuffers...)
	if v.EBO != 0 {
		buffers = append(buffers, v.EBO)
	}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	*v = VertexArray{}
}
