package shaders

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllShadersRender(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	data := &ShaderData{
		MaxDiffuse:    2,
		MaxSpecular:   1,
		InstanceCount: 100,
		KernelOffset:  300,
		Effects:       DefaultEffects(),
	}

	for _, name := range s.TemplateNames() {
		if !strings.HasSuffix(name, ".vert") && !strings.HasSuffix(name, ".frag") && !strings.HasSuffix(name, ".geom") {
			continue
		}
		t.Run(name, func(t *testing.T) {
			src, err := s.GetShaderSource(name, data)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(src, "#version 330 core\n"), "shader must start with the version line")
			assert.NotContains(t, src, "{{")
		})
	}
}

func TestPhongSamplerArrays(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	src, err := s.GetShaderSource("phong.frag", &ShaderData{MaxDiffuse: 3, MaxSpecular: 2})
	require.NoError(t, err)
	assert.Contains(t, src, "sampler2D texture_diffuse[3];")
	assert.Contains(t, src, "sampler2D texture_specular[2];")
}

func TestPostprocessEffects(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	src, err := s.GetShaderSource("postprocess.frag", &ShaderData{KernelOffset: 300, Effects: DefaultEffects()})
	require.NoError(t, err)

	assert.Contains(t, src, "const float offset = 1.0 / 300.0;")
	assert.Contains(t, src, "if (effect == 1) {")
	assert.Contains(t, src, "col = 1.0 - col;")
	assert.Contains(t, src, "float kernel[9] = float[](1.0, 1.0, 1.0, 1.0, -8.0, 1.0, 1.0, 1.0, 1.0);")
}

func TestKernelList(t *testing.T) {
	e := Effect{Kernel: []float32{1, -0.5, 0.0625}}
	assert.Equal(t, "1.0, -0.5, 0.0625", e.KernelList())
}

func TestOverrides(t *testing.T) {
	overrides := fstest.MapFS{
		"textured.frag": &fstest.MapFile{Data: []byte("{{template \"header\"}}\n// overridden\n")},
	}
	s, err := NewShadererWithOverrides(overrides)
	require.NoError(t, err)

	src, err := s.GetShaderSource("textured.frag", nil)
	require.NoError(t, err)
	assert.Equal(t, "#version 330 core\n// overridden\n", src)

	// untouched shaders still come from the embedded set
	src, err = s.GetShaderSource("textured.vert", nil)
	require.NoError(t, err)
	assert.Contains(t, src, "TexCoord = aTexCoord;")
}

func TestOverridesParseError(t *testing.T) {
	overrides := fstest.MapFS{
		"broken.frag": &fstest.MapFile{Data: []byte("{{ if }}")},
	}
	_, err := NewShadererWithOverrides(overrides)
	assert.Error(t, err)
}

func TestUnknownShader(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	_, err = s.GetShaderSource("nope.frag", nil)
	assert.Error(t, err)
}

func TestSpec(t *testing.T) {
	spec := Spec{Vertex: "explode.vert", Geometry: "explode.geom", Fragment: "explode.frag"}
	assert.Equal(t, "explode.vert+explode.geom+explode.frag", spec.String())

	assert.True(t, spec.Uses([]string{"explode.geom"}))
	assert.True(t, spec.Uses([]string{"header.glsl"}))
	assert.False(t, spec.Uses([]string{"skybox.frag"}))
	assert.False(t, spec.Uses(nil))

	noGeom := Spec{Vertex: "skybox.vert", Fragment: "skybox.frag"}
	assert.Equal(t, "skybox.vert+skybox.frag", noGeom.String())
	assert.False(t, noGeom.Uses([]string{""}), "an empty name never matches a missing stage")
}

func TestEffectName(t *testing.T) {
	effects := DefaultEffects()
	assert.Equal(t, "none", EffectName(effects, 0))
	assert.Equal(t, "blur", EffectName(effects, 4))
	assert.Equal(t, "none", EffectName(effects, 42))
}
