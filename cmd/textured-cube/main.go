package main

import (
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

var cubePositions = []mgl32.Vec3{
	{0, 0, 0},
	{2, 5, -15},
	{-1.5, -2.2, -2.5},
	{-3.8, -2, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3, -7.5},
	{1.3, -2, -2.5},
	{1.5, 2, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1, -1.5},
}

var rotationAxis = mgl32.Vec3{1, 0.3, 0.5}.Normalize()

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.New("textured cube", cfg, 0)
	if err != nil {
		log.Fatalf("could not set up: %s", err)
	}
	defer a.Close()

	program, err := a.Shaders.Build(shaders.Spec{Vertex: "textured.vert", Fragment: "textured.frag"})
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
	wall := rendering.NewVertexArray(geometry.QuadVertices(5, 2.5), geometry.TexLayout)
	defer wall.Delete()

	a.Run(func(f *app.Frame) {
		program.Use()
		program.SetInt("texture1", 0)
		program.SetMat4("view", f.View)
		program.SetMat4("projection", f.Projection)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, texture)

		program.SetMat4("model", mgl32.Ident4())
		floor.Draw(gl.TRIANGLES)
		program.SetMat4("model", mgl32.Translate3D(0, 2, -5))
		wall.Draw(gl.TRIANGLE_STRIP)

		for i, pos := range cubePositions {
			angle := mgl32.DegToRad(20 * float32(i))
			if i%3 == 0 {
				angle += f.Time
			}
			model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
				Mul4(mgl32.HomogRotate3D(angle, rotationAxis))
			program.SetMat4("model", model)
			cube.Draw(gl.TRIANGLES)
		}
	})
}
