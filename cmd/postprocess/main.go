package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/fosdem/glexamples/lib/app"
	"github.com/fosdem/glexamples/lib/config"
	"github.com/fosdem/glexamples/lib/geometry"
	"github.com/fosdem/glexamples/lib/rendering"
	"github.com/fosdem/glexamples/lib/rendering/shaders"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	effects := shaders.DefaultEffects()
	a, err := app.New("post-processing", cfg, len(effects)+1)
	if err != nil {
		log.Fatalf("could not set up: %s", err)
	}
	defer a.Close()

	scene, err := a.Shaders.Build(shaders.Spec{Vertex: "textured.vert", Fragment: "textured.frag"})
	if err != nil {
		log.Fatalf("could not init GL program: %s", err)
	}
	screen, err := a.Shaders.Build(shaders.Spec{
		Vertex:   "screen.vert",
		Fragment: "postprocess.frag",
		Data:     &shaders.ShaderData{KernelOffset: 300, Effects: effects},
	})
	if err != nil {
		log.Fatalf("could not init GL program: %s", err)
	}

	texture, err := rendering.LoadTextureOrCheckerboard(string(cfg.Assets.Texture))
	if err != nil {
		log.Fatalf("could not load texture: %s", err)
	}
	defer rendering.DeleteTexture(texture)

	cube := rendering.NewVertexArray(geometry.CubeVertices(), geometry.TexLayout)
	defer cube.Delete()
	floor := rendering.NewVertexArray(geometry.PlaneVertices(), geometry.TexLayout)
	defer floor.Delete()
	quad := rendering.NewVertexArray(geometry.ScreenQuadVertices(), geometry.ScreenLayout)
	defer quad.Delete()

	width, height := a.Window.FramebufferSize()
	fb, err := rendering.NewFramebuffer(width, height)
	if err != nil {
		log.Fatalf("could not create framebuffer: %s", err)
	}
	defer fb.Delete()

	a.Run(func(f *app.Frame) {
		if f.ModeChanged {
			name := "none"
			if f.Mode > 0 {
				name = shaders.EffectName(effects, f.Mode)
			}
			a.Window.SetTitle(fmt.Sprintf("%s (%s)", cfg.Window.Title, name))
		}
		if f.Width > 0 && f.Height > 0 && (f.Width != fb.Width || f.Height != fb.Height) {
			err := fb.Resize(f.Width, f.Height)
			if err != nil {
				log.Fatalf("could not resize framebuffer: %s", err)
			}
		}

		fb.Bind()
		gl.Enable(gl.DEPTH_TEST)
		gl.ClearColor(0.1, 0.1, 0.1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		scene.Use()
		scene.SetInt("texture1", 0)
		scene.SetMat4("view", f.View)
		scene.SetMat4("projection", f.Projection)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, texture)

		scene.SetMat4("model", mgl32.Translate3D(-1, 0, -1))
		cube.Draw(gl.TRIANGLES)
		scene.SetMat4("model", mgl32.Translate3D(2, 0, 0).Mul4(mgl32.HomogRotate3DY(f.Time)))
		cube.Draw(gl.TRIANGLES)
		scene.SetMat4("model", mgl32.Ident4())
		floor.Draw(gl.TRIANGLES)

		fb.Unbind()
		gl.Viewport(0, 0, int32(f.Width), int32(f.Height))
		gl.Disable(gl.DEPTH_TEST)
		gl.ClearColor(1, 1, 1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		screen.Use()
		screen.SetInt("screenTexture", 0)
		screen.SetInt("effect", int32(f.Mode))
		gl.BindTexture(gl.TEXTURE_2D, fb.ColorTexture)
		quad.Draw(gl.TRIANGLES)
		gl.Enable(gl.DEPTH_TEST)
	})
}
