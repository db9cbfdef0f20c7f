package main

import (
	"log"
	"os"
	"runtime"

	"github.com/fosdem/glexamples/lib/app"
	"github.com/fosdem/glexamples/lib/config"
	"github.com/fosdem/glexamples/lib/model"
	"github.com/fosdem/glexamples/lib/rendering/shaders"
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

	a, err := app.New("model loading", cfg, 0)
	if err != nil {
		log.Fatalf("could not set up: %s", err)
	}
	defer a.Close()

	program, err := a.Shaders.Build(shaders.Spec{
		Vertex:   "model.vert",
		Fragment: "phong.frag",
		Data:     &shaders.ShaderData{MaxDiffuse: 1, MaxSpecular: 1},
	})
	if err != nil {
		log.Fatalf("could not init GL program: %s", err)
	}

	m, err := model.Load(string(cfg.Assets.Model))
	if err != nil {
		log.Fatalf("could not load model: %s", err)
	}
	defer m.Delete()

	transform := mgl32.Translate3D(0, -1.75, 0).Mul4(mgl32.Scale3D(0.2, 0.2, 0.2))

	a.Run(func(f *app.Frame) {
		program.Use()
		program.SetMat4("model", transform)
		program.SetMat4("view", f.View)
		program.SetMat4("projection", f.Projection)
		program.SetVec3("viewPos", f.Camera.Position())

		program.SetVec3("light.position", mgl32.Vec3{1.2, 1, 2})
		program.SetVec3("light.ambient", mgl32.Vec3{0.2, 0.2, 0.2})
		program.SetVec3("light.diffuse", mgl32.Vec3{0.8, 0.8, 0.8})
		program.SetVec3("light.specular", mgl32.Vec3{1, 1, 1})

		m.Draw(program)
	})
}
