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

const (
	modeHouses = iota
	modeExplode
	modeNormals
)

var modeNames = []string{"houses", "explode", "normals"}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.New("geometry shader", cfg, len(modeNames))
	if err != nil {
		log.Fatalf("could not set up: %s", err)
	}
	defer a.Close()

	houses, err := a.Shaders.Build(shaders.Spec{Vertex: "points.vert", Geometry: "houses.geom", Fragment: "houses.frag"})
	if err != nil {
		log.Fatalf("could not init GL program: %s", err)
	}
	explode, err := a.Shaders.Build(shaders.Spec{Vertex: "explode.vert", Geometry: "explode.geom", Fragment: "explode.frag"})
	if err != nil {
		log.Fatalf("could not init GL program: %s", err)
	}
	normals, err := a.Shaders.Build(shaders.Spec{Vertex: "normals.vert", Geometry: "normals.geom", Fragment: "normals.frag"})
	if err != nil {
		log.Fatalf("could not init GL program: %s", err)
	}

	points := rendering.NewVertexArray(geometry.PointVertices(), geometry.PointLayout)
	defer points.Delete()
	cube := rendering.NewVertexArray(geometry.CubeNormalVertices(), geometry.NormalLayout)
	defer cube.Delete()

	a.Run(func(f *app.Frame) {
		if f.ModeChanged {
			a.Window.SetTitle(fmt.Sprintf("%s (%s)", cfg.Window.Title, modeNames[f.Mode]))
		}
		model := mgl32.HomogRotate3D(f.Time*0.5, mgl32.Vec3{0.5, 1, 0}.Normalize())

		switch f.Mode {
		case modeHouses:
			houses.Use()
			points.Draw(gl.POINTS)
		case modeExplode:
			drawCube(explode, cube, f, model, 1.5)
		case modeNormals:
			drawCube(explode, cube, f, model, 0)
			normals.Use()
			normals.SetMat4("model", model)
			normals.SetMat4("view", f.View)
			normals.SetMat4("projection", f.Projection)
			normals.SetFloat("magnitude", 0.2)
			cube.Draw(gl.TRIANGLES)
		}
	})
}

func drawCube(p *shaders.Program, cube *rendering.VertexArray, f *app.Frame, model mgl32.Mat4, magnitude float32) {
	p.Use()
	p.SetMat4("model", model)
	p.SetMat4("view", f.View)
	p.SetMat4("projection", f.Projection)
	p.SetFloat("time", f.Time)
	p.SetFloat("magnitude", magnitude)
	cube.Draw(gl.TRIANGLES)
}
