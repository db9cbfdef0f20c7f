package shaders

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Spec names the templates a program is built from. Geometry is optional.
type Spec struct {
	Vertex   string
	Geometry string
	Fragment string
	Data     *ShaderData
}

func (s Spec) String() string {
	names := []string{s.Vertex}
	if s.Geometry != "" {
		names = append(names, s.Geometry)
	}
	names = append(names, s.Fragment)
	return strings.Join(names, "+")
}

// Uses reports whether any of the templates is one of the given files.
// The shared header is used by every program.
func (s Spec) Uses(files []string) bool {
	for _, f := range files {
		if f == "" {
			continue
		}
		if f == s.Vertex || f == s.Geometry || f == s.Fragment || strings.HasSuffix(f, ".glsl") {
			return true
		}
	}
	return false
}

type Program struct {
	ID   uint32
	Spec Spec

	locations map[string]int32
}

func BuildGLProgram(shaderer *Shaderer, spec Spec) (*Program, error) {
	id, err := buildProgramID(shaderer, spec)
	if err != nil {
		return nil, err
	}
	return &Program{ID: id, Spec: spec, locations: make(map[string]int32)}, nil
}

func buildProgramID(shaderer *Shaderer, spec Spec) (uint32, error) {
	vertexShader, err := shaderer.GetShaderSource(spec.Vertex, spec.Data)
	if err != nil {
		return 0, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragmentShader, err := shaderer.GetShaderSource(spec.Fragment, spec.Data)
	if err != nil {
		return 0, fmt.Errorf("could not get fragment shader: %w", err)
	}

	var geometryShader string
	if spec.Geometry != "" {
		geometryShader, err = shaderer.GetShaderSource(spec.Geometry, spec.Data)
		if err != nil {
			return 0, fmt.Errorf("could not get geometry shader: %w", err)
		}
	}

	program, err := newProgram(vertexShader, geometryShader, fragmentShader)
	if err != nil {
		return 0, fmt.Errorf("could not init shader %s: %w", spec, err)
	}
	return program, nil
}

func newProgram(vertexShaderSource, geometryShaderSource, fragmentShaderSource string) (uint32, error) {
	type stage struct {
		source     string
		shaderType uint32
	}
	stages := []stage{{vertexShaderSource, gl.VERTEX_SHADER}}
	if geometryShaderSource != "" {
		stages = append(stages, stage{geometryShaderSource, gl.GEOMETRY_SHADER})
	}
	stages = append(stages, stage{fragmentShaderSource, gl.FRAGMENT_SHADER})

	var compiled []uint32
	deleteAll := func() {
		for _, shader := range compiled {
			gl.DeleteShader(shader)
		}
	}

	for _, s := range stages {
		shader, err := compileShader(s.source, s.shaderType)
		if err != nil {
			deleteAll()
			return 0, err
		}
		compiled = append(compiled, shader)
	}

	program := gl.CreateProgram()
	for _, shader := range compiled {
		gl.AttachShader(program, shader)
	}
	gl.LinkProgram(program)
	deleteAll()

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		logmsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logmsg))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(logmsg, "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	size := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &size)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		clog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %s shader: %v", shaderTypeName(shaderType), strings.TrimRight(clog, "\x00"))
	}

	return shader, nil
}

func shaderTypeName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}

// Rebuild compiles the program again from its spec. On failure the
// current program stays in use.
func (p *Program) Rebuild(shaderer *Shaderer) error {
	id, err := buildProgramID(shaderer, p.Spec)
	if err != nil {
		return err
	}
	gl.DeleteProgram(p.ID)
	p.ID = id
	clear(p.locations)
	return nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.Location(name), value)
}

func (p *Program) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.Uniform1i(p.Location(name), v)
}

func (p *Program) SetFloat(name string, value float32) {
	gl.Uniform1f(p.Location(name), value)
}

func (p *Program) SetVec3(name string, value mgl32.Vec3) {
	gl.Uniform3fv(p.Location(name), 1, &value[0])
}

func (p *Program) SetMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, &value[0])
}
