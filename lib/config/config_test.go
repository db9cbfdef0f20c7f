package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultTitle, cfg.Window.Title)
	assert.True(t, *cfg.Window.Fullscreen)
	assert.True(t, *cfg.Window.Vsync)
	assert.Equal(t, DefaultSamples, *cfg.Window.Samples)
	assert.Equal(t, []float32{0, 0, 3}, cfg.Camera.Position)
	assert.Equal(t, DefaultYaw, *cfg.Camera.Yaw)
	assert.Equal(t, DefaultInstanceCount, cfg.Instancing.Count)
	assert.Nil(t, cfg.Api)
}

func TestLoadWithoutArgs(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Skybox
  width: 800
  height: 600
  fullscreen: false
  samples: 0
clear_colour: "#000000ff"
camera:
  position: [1, 2, 3]
  yaw: 0
  fov: 30
assets:
  texture: textures/container.jpg
  skybox_dir: /opt/skybox
  model: objects/cube.obj
instancing:
  count: 500
log:
  level: debug
api:
  bind: localhost:8080
  enable_profiler: true
`)

	cfg, err := Parse(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, "Skybox", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.False(t, *cfg.Window.Fullscreen)
	assert.Equal(t, 0, *cfg.Window.Samples)
	assert.True(t, *cfg.Window.Vsync, "unset booleans keep their default")
	assert.Equal(t, []float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, float32(0), *cfg.Camera.Yaw, "an explicit zero yaw is kept")
	assert.Equal(t, float32(30), cfg.Camera.Fov)
	assert.Equal(t, DefaultSpeed, cfg.Camera.Speed)

	assert.Equal(t, CfgPath(filepath.Join(dir, "textures/container.jpg")), cfg.Assets.Texture)
	assert.Equal(t, CfgPath("/opt/skybox"), cfg.Assets.SkyboxDir)
	assert.Equal(t, CfgPath(filepath.Join(dir, "objects/cube.obj")), cfg.Assets.Model)
	assert.Equal(t, DefaultSkyboxExt, cfg.Assets.SkyboxExt)

	assert.Equal(t, 500, cfg.Instancing.Count)
	assert.Equal(t, DefaultInstanceRadius, cfg.Instancing.Radius)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.NotNil(t, cfg.Api)
	assert.Equal(t, "localhost:8080", cfg.Api.Bind)
	assert.True(t, cfg.Api.EnableProfiler)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"bad colour", `clear_colour: "red"`, "not a valid RGBA hex colour"},
		{"bad position", "camera:\n  position: [1, 2]\n", "three components"},
		{"bad fov", "camera:\n  fov: 90\n", "fov must be between"},
		{"bad samples", "window:\n  samples: 64\n", "samples must be between"},
		{"negative size", "window:\n  width: -1\n", "must be positive"},
		{"watch without dir", "shaders:\n  watch: true\n", "without a shader dir"},
		{"bad instance count", "instancing:\n  count: -5\n", "count must be positive"},
		{"bad log level", "log:\n  level: loud\n", "log level loud is invalid"},
		{"api without bind", "api:\n  enable_profiler: true\n", "bind address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not open")
}

func TestSkyboxFaces(t *testing.T) {
	a := AssetsCfg{SkyboxDir: "sky", SkyboxExt: "png"}
	faces := a.SkyboxFaces()

	assert.Equal(t, "sky/right.png", faces[0])
	assert.Equal(t, "sky/left.png", faces[1])
	assert.Equal(t, "sky/top.png", faces[2])
	assert.Equal(t, "sky/bottom.png", faces[3])
	assert.Equal(t, "sky/front.png", faces[4])
	assert.Equal(t, "sky/back.png", faces[5])
}

func TestString(t *testing.T) {
	s := Default().String()
	assert.Contains(t, s, "Learn OpenGL (1280x720, fullscreen, 4x MSAA)")
	assert.Contains(t, s, "(checkerboard)")
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", resolvePath("/base", ""))
	assert.Equal(t, "/abs/file", resolvePath("/base", "/abs/file"))
	assert.Equal(t, "/base/rel/file", resolvePath("/base", "rel/file"))
	assert.Equal(t, "/rel", resolvePath("/base", "../rel"))
	assert.Equal(t, filepath.Join(home, "x.png"), resolvePath("/base", "~/x.png"))
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(writeConfig(t, "window: [1, 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse")
}

func TestDefaultAssetsStayRelativeToWorkingDir(t *testing.T) {
	cfg, err := Parse(writeConfig(t, "assets:\n  texture: wood.png\n"))
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(string(cfg.Assets.Texture)))
	assert.Equal(t, CfgPath(DefaultSkyboxDir), cfg.Assets.SkyboxDir)
	assert.Equal(t, CfgPath(DefaultModel), cfg.Assets.Model)
}
