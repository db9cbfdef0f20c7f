package model

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fosdem/glexamples/lib/geometry"
	"github.com/fosdem/glexamples/lib/rendering"
	"github.com/fosdem/glexamples/lib/rendering/shaders"
	"github.com/go-gl/gl/v3.3-core/gl"
)

type TextureKind int

const (
	DiffuseTexture TextureKind = iota
	SpecularTexture
)

func (k TextureKind) uniform() string {
	if k == SpecularTexture {
		return "texture_specular"
	}
	return "texture_diffuse"
}

type TextureRef struct {
	Path string
	Kind TextureKind
}

// MeshSource is a parsed mesh with its material and resolved texture
// paths, ready for upload.
type MeshSource struct {
	*MeshData
	Material *Material
	Textures []TextureRef
}

// ReadFile parses an OBJ file and its material libraries without
// touching the GPU.
func ReadFile(path string) ([]MeshSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	obj, err := parseObj(filepath.Base(path), f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	materials := make(map[string]*Material)
	for _, lib := range obj.MaterialLibs {
		mtls, err := readMtl(resolve(dir, lib))
		if err != nil {
			return nil, err
		}
		for name, m := range mtls {
			materials[name] = m
		}
	}

	sources := make([]MeshSource, 0, len(obj.Meshes))
	for _, mesh := range obj.Meshes {
		src := MeshSource{MeshData: mesh}
		if mesh.Material != "" {
			src.Material = materials[mesh.Material]
			if src.Material == nil {
				slog.Warn("unknown material", "module", "model", "material", mesh.Material, "mesh", mesh.Name)
			}
		}
		if src.Material != nil {
			if src.Material.DiffuseTexture != "" {
				src.Textures = append(src.Textures, TextureRef{resolve(dir, src.Material.DiffuseTexture), DiffuseTexture})
			}
			if src.Material.SpecularTexture != "" {
				src.Textures = append(src.Textures, TextureRef{resolve(dir, src.Material.SpecularTexture), SpecularTexture})
			}
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func readMtl(path string) (map[string]*Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	materials, err := ParseMtl(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return materials, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

type MeshTexture struct {
	ID   uint32
	Kind TextureKind
}

type Mesh struct {
	Name     string
	Array    *rendering.VertexArray
	Textures []MeshTexture
	// Shininess of the material, 32 when there is none
	Shininess float32
}

type Model struct {
	Meshes   []*Mesh
	textures *TextureCache
}

// Load reads an OBJ model and uploads its meshes and textures. It must
// run on the thread owning the GL context.
func Load(path string) (*Model, error) {
	sources, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := &Model{textures: NewTextureCache(rendering.LoadTexture)}
	for _, src := range sources {
		mesh, err := m.upload(src)
		if err != nil {
			m.Delete()
			return nil, err
		}
		m.Meshes = append(m.Meshes, mesh)
	}

	slog.Info("loaded model", "module", "model", "path", path,
		"meshes", len(m.Meshes), "textures", m.textures.Len())
	return m, nil
}

func (m *Model) upload(src MeshSource) (*Mesh, error) {
	mesh := &Mesh{Name: src.Name, Shininess: 32}
	if src.Material != nil && src.Material.Shininess > 0 {
		mesh.Shininess = src.Material.Shininess
	}

	for _, ref := range src.Textures {
		id, err := m.textures.Get(ref.Path)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", src.Name, err)
		}
		mesh.Textures = append(mesh.Textures, MeshTexture{ID: id, Kind: ref.Kind})
	}

	mesh.Array = rendering.NewIndexedVertexArray(Flatten(src.Vertices), src.Indices, geometry.ModelLayout)
	return mesh, nil
}

// Draw binds the mesh textures to consecutive units and draws it.
func (mesh *Mesh) Draw(p *shaders.Program) {
	var diffuse, specular int
	for i, t := range mesh.Textures {
		var name string
		switch t.Kind {
		case SpecularTexture:
			name = fmt.Sprintf("material.%s[%d]", t.Kind.uniform(), specular)
			specular++
		default:
			name = fmt.Sprintf("material.%s[%d]", t.Kind.uniform(), diffuse)
			diffuse++
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		p.SetInt(name, int32(i))
		gl.BindTexture(gl.TEXTURE_2D, t.ID)
	}
	p.SetBool("hasSpecular", specular > 0)
	p.SetFloat("material.shininess", mesh.Shininess)

	mesh.Array.Draw(gl.TRIANGLES)
	gl.ActiveTexture(gl.TEXTURE0)
}

func (m *Model) Draw(p *shaders.Program) {
	for _, mesh := range m.Meshes {
		mesh.Draw(p)
	}
}

func (m *Model) Delete() {
	for _, mesh := range m.Meshes {
		mesh.Array.Delete()
	}
	m.Meshes = nil
	m.textures.Release(rendering.DeleteTexture)
}
