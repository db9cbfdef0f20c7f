package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"text/template"
)

//go:embed *.vert *.frag *.geom *.glsl
var templateDir embed.FS

var patterns = []string{"*.glsl", "*.vert", "*.frag", "*.geom"}

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	return NewShadererWithOverrides(nil)
}

// NewShadererWithOverrides parses the embedded shaders and then any
// shader files found in overrides, which replace embedded ones with the
// same name.
func NewShadererWithOverrides(overrides fs.FS) (*Shaderer, error) {
	s := &Shaderer{}

	var err error
	s.templates, err = template.New("shaders").Funcs(template.FuncMap{"float": glslFloat}).ParseFS(templateDir, patterns...)
	if err != nil {
		return nil, err
	}
	if overrides == nil {
		return s, nil
	}

	for _, pattern := range patterns {
		matches, err := fs.Glob(overrides, pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			continue
		}
		s.templates, err = s.templates.ParseFS(overrides, matches...)
		if err != nil {
			return nil, fmt.Errorf("could not parse shader overrides: %w", err)
		}
	}
	return s, nil
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	MaxDiffuse    int
	MaxSpecular   int
	InstanceCount int
	KernelOffset  float32
	Effects       []Effect
}

// Effect is one post-processing mode. It either convolves the screen
// texture with a 3x3 kernel or runs a GLSL snippet on col.
type Effect struct {
	ID     int
	Name   string
	Kernel []float32
	Body   string
}

func (e Effect) KernelList() string {
	parts := make([]string, len(e.Kernel))
	for i, k := range e.Kernel {
		parts[i] = glslFloat(k)
	}
	return strings.Join(parts, ", ")
}

func glslFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	if data == nil {
		data = &ShaderData{}
	}
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
