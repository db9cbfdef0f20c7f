package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/glexamples/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

const (
	DefaultTitle       = "Learn OpenGL"
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultSamples     = 4
	DefaultClearColour = "#1a1a1aff"

	DefaultYaw         float32 = -90
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.05
	DefaultFov         float32 = 45

	DefaultSkyboxDir = "resources/textures/skybox"
	DefaultSkyboxExt = "jpg"
	DefaultModel     = "resources/objects/nanosuit/nanosuit.obj"

	DefaultInstanceCount  int     = 10000
	DefaultInstanceRadius float32 = 50
	DefaultInstanceOffset float32 = 2.5
	DefaultInstanceSeed   int64   = 1
)

type Config struct {
	Window      WindowCfg
	ClearColour string `yaml:"clear_colour"`
	Camera      CameraCfg
	Assets      AssetsCfg
	Shaders     ShadersCfg
	Instancing  InstancingCfg
	Log         LogCfg
	Api         *ApiCfg
}

type WindowCfg struct {
	Title      string
	Width      int
	Height     int
	Fullscreen *bool
	Samples    *int
	Vsync      *bool
}

type CameraCfg struct {
	Position    []float32
	Yaw         *float32
	Pitch       float32
	Speed       float32
	Sensitivity float32
	Fov         float32
}

// AssetsCfg locates the files the examples load. Paths set in a config
// file are relative to that file. The defaults for SkyboxDir and Model
// are not: they stay relative to the working directory, where the
// resources/ tree of a checkout lives.
type AssetsCfg struct {
	// Texture is used by the textured cube; a checkerboard is generated
	// when it is empty.
	Texture   CfgPath
	SkyboxDir CfgPath `yaml:"skybox_dir"`
	SkyboxExt string  `yaml:"skybox_ext"`
	Model     CfgPath
}

type ShadersCfg struct {
	Dir   CfgPath
	Watch bool
}

type InstancingCfg struct {
	Count  int
	Radius float32
	Offset float32
	Seed   int64
}

type LogCfg struct {
	Level string
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			slog.Warn(fmt.Sprintf("could not close %s: %s", filename, err))
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	ctx := withBaseDir(context.Background(), filepath.Dir(absFilename))

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.DecodeContext(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", filename, err)
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

// Load parses the config file given as the first positional argument,
// or returns the defaults when there is none.
func Load(args []string) (*Config, error) {
	if len(args) < 1 || args[0] == "" {
		return Default(), nil
	}
	return Parse(args[0])
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Window.Fullscreen == nil {
		c.Window.Fullscreen = ptr(true)
	}
	if c.Window.Samples == nil {
		c.Window.Samples = ptr(DefaultSamples)
	}
	if c.Window.Vsync == nil {
		c.Window.Vsync = ptr(true)
	}
	if c.ClearColour == "" {
		c.ClearColour = DefaultClearColour
	}

	if c.Camera.Position == nil {
		c.Camera.Position = []float32{0, 0, 3}
	}
	if c.Camera.Yaw == nil {
		c.Camera.Yaw = ptr(DefaultYaw)
	}
	if c.Camera.Speed == 0 {
		c.Camera.Speed = DefaultSpeed
	}
	if c.Camera.Sensitivity == 0 {
		c.Camera.Sensitivity = DefaultSensitivity
	}
	if c.Camera.Fov == 0 {
		c.Camera.Fov = DefaultFov
	}

	if c.Assets.SkyboxDir == "" {
		c.Assets.SkyboxDir = DefaultSkyboxDir
	}
	if c.Assets.SkyboxExt == "" {
		c.Assets.SkyboxExt = DefaultSkyboxExt
	}
	if c.Assets.Model == "" {
		c.Assets.Model = DefaultModel
	}

	if c.Instancing.Count == 0 {
		c.Instancing.Count = DefaultInstanceCount
	}
	if c.Instancing.Radius == 0 {
		c.Instancing.Radius = DefaultInstanceRadius
	}
	if c.Instancing.Offset == 0 {
		c.Instancing.Offset = DefaultInstanceOffset
	}
	if c.Instancing.Seed == 0 {
		c.Instancing.Seed = DefaultInstanceSeed
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) Validate() error {
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window config is invalid: %w", err)
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", c.ClearColour)
	}
	err = c.Camera.Validate()
	if err != nil {
		return fmt.Errorf("camera config is invalid: %w", err)
	}
	err = c.Shaders.Validate()
	if err != nil {
		return fmt.Errorf("shaders config is invalid: %w", err)
	}
	err = c.Instancing.Validate()
	if err != nil {
		return fmt.Errorf("instancing config is invalid: %w", err)
	}
	var lvl slog.Level
	err = lvl.UnmarshalText([]byte(c.Log.Level))
	if err != nil {
		return fmt.Errorf("log level %s is invalid", c.Log.Level)
	}
	if c.Api != nil {
		err = c.Api.Validate()
		if err != nil {
			return fmt.Errorf("api config is invalid: %w", err)
		}
	}
	return nil
}

func (w *WindowCfg) Validate() error {
	if w.Width < 1 || w.Height < 1 {
		return fmt.Errorf("window size %dx%d must be positive", w.Width, w.Height)
	}
	if w.Samples != nil && (*w.Samples < 0 || *w.Samples > 16) {
		return fmt.Errorf("samples must be between 0 and 16")
	}
	return nil
}

func (c *CameraCfg) Validate() error {
	if len(c.Position) != 3 {
		return fmt.Errorf("position must have exactly three components")
	}
	if c.Speed < 0 {
		return fmt.Errorf("speed must be nonnegative")
	}
	if c.Sensitivity < 0 {
		return fmt.Errorf("sensitivity must be nonnegative")
	}
	if c.Fov < 1 || c.Fov > 45 {
		return fmt.Errorf("fov must be between 1 and 45 degrees")
	}
	return nil
}

func (s *ShadersCfg) Validate() error {
	if s.Watch && s.Dir == "" {
		return fmt.Errorf("cannot watch shaders without a shader dir")
	}
	return nil
}

func (i *InstancingCfg) Validate() error {
	if i.Count < 1 {
		return fmt.Errorf("count must be positive")
	}
	if i.Radius <= 0 {
		return fmt.Errorf("radius must be positive")
	}
	if i.Offset < 0 {
		return fmt.Errorf("offset must be nonnegative")
	}
	return nil
}

func (a *ApiCfg) Validate() error {
	if a.Bind == "" {
		return fmt.Errorf("bind address must be specified")
	}
	return nil
}

// SkyboxFaces lists the cubemap face images in GL target order
// (+X, -X, +Y, -Y, +Z, -Z).
func (a *AssetsCfg) SkyboxFaces() [6]string {
	var faces [6]string
	for i, name := range []string{"right", "left", "top", "bottom", "front", "back"} {
		faces[i] = filepath.Join(string(a.SkyboxDir), name+"."+a.SkyboxExt)
	}
	return faces
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	mode := "windowed"
	if *c.Window.Fullscreen {
		mode = "fullscreen"
	}
	b.WriteString(fmt.Sprintf("  %s (%dx%d, %s, %dx MSAA)\n", c.Window.Title, c.Window.Width, c.Window.Height, mode, *c.Window.Samples))

	b.WriteString("\nAssets:\n")
	texture := string(c.Assets.Texture)
	if texture == "" {
		texture = "(checkerboard)"
	}
	b.WriteString(fmt.Sprintf("  texture: %s\n", texture))
	b.WriteString(fmt.Sprintf("  skybox:  %s/*.%s\n", c.Assets.SkyboxDir, c.Assets.SkyboxExt))
	b.WriteString(fmt.Sprintf("  model:   %s\n", c.Assets.Model))

	b.WriteString("\nInstancing:\n")
	b.WriteString(fmt.Sprintf("  %d instances, radius %g\n", c.Instancing.Count, c.Instancing.Radius))

	if c.Api != nil {
		b.WriteString("\nApi:\n")
		b.WriteString(fmt.Sprintf("  %s\n", c.Api.Bind))
	}

	return b.String()
}

func ptr[T any](v T) *T {
	return &v
}
