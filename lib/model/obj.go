// Package model loads Wavefront OBJ models with their MTL materials and
// uploads them as indexed meshes.
//
// Parsing is done by gwob; this package splits its output into one
// mesh per group with a compact vertex list each.
package model

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
)

var ErrNoNormals = errors.New("no normals in .obj")

// Vertex matches geometry.ModelLayout.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// MeshData is one group or material run of an OBJ file with a single
// index per vertex.
type MeshData struct {
	Name     string
	Material string
	Vertices []Vertex
	Indices  []uint32
}

type ObjData struct {
	Meshes       []*MeshData
	MaterialLibs []string
}

func parserOptions() *gwob.ObjParserOptions {
	logger := slog.With("module", "model")
	return &gwob.ObjParserOptions{
		Logger: func(msg string) { logger.Debug(msg) },
	}
}

func ParseObj(r io.Reader) (*ObjData, error) {
	return parseObj("obj", r)
}

func parseObj(name string, r io.Reader) (*ObjData, error) {
	o, err := gwob.NewObjFromReader(name, r, parserOptions())
	if err != nil {
		return nil, err
	}
	if !o.NormCoordFound {
		return nil, ErrNoNormals
	}

	layout := coordLayout{
		stride:   o.StrideSize / 4,
		position: o.StrideOffsetPosition / 4,
		texture:  o.StrideOffsetTexture / 4,
		normal:   o.StrideOffsetNormal / 4,
		hasUV:    o.TextCoordFound,
	}
	if layout.stride == 0 {
		return nil, fmt.Errorf("%s: no vertex data", name)
	}
	count := len(o.Coord) / layout.stride

	data := &ObjData{}
	if o.Mtllib != "" {
		data.MaterialLibs = append(data.MaterialLibs, o.Mtllib)
	}
	for _, g := range o.Groups {
		if g.IndexCount == 0 {
			continue
		}
		end := g.IndexBegin + g.IndexCount
		if g.IndexBegin < 0 || end > len(o.Indices) {
			return nil, fmt.Errorf("%s: group %q indexes past the index list", name, g.Name)
		}
		mesh, err := layout.mesh(g, o.Indices[g.IndexBegin:end], o.Coord, count)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		data.Meshes = append(data.Meshes, mesh)
	}
	return data, nil
}

// coordLayout describes gwob's interleaved coordinates in floats.
type coordLayout struct {
	stride, position, texture, normal int
	hasUV                             bool
}

// mesh copies the vertices a group references into a list of its own,
// keeping the order of first use.
func (l coordLayout) mesh(g *gwob.Group, indices []int, coord []float32, count int) (*MeshData, error) {
	mesh := &MeshData{Name: g.Name, Material: g.Usemtl}
	local := make(map[int]uint32)
	for _, i := range indices {
		if i < 0 || i >= count {
			return nil, fmt.Errorf("group %q: vertex %d out of range (%d vertices)", g.Name, i, count)
		}
		idx, ok := local[i]
		if !ok {
			idx = uint32(len(mesh.Vertices))
			local[i] = idx
			mesh.Vertices = append(mesh.Vertices, l.vertex(coord[i*l.stride:(i+1)*l.stride]))
		}
		mesh.Indices = append(mesh.Indices, idx)
	}
	return mesh, nil
}

func (l coordLayout) vertex(c []float32) Vertex {
	v := Vertex{
		Position: mgl32.Vec3{c[l.position], c[l.position+1], c[l.position+2]},
		Normal:   mgl32.Vec3{c[l.normal], c[l.normal+1], c[l.normal+2]},
	}
	if l.hasUV {
		v.TexCoord = mgl32.Vec2{c[l.texture], c[l.texture+1]}
	}
	return v
}

// Flatten interleaves vertices into the float layout of
// geometry.ModelLayout.
func Flatten(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*8)
	for _, v := range vertices {
		data = append(data,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return data
}
