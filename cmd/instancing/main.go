package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/fosdem/glexamples/lib/app"
	"github.com/fosdem/glexamples/lib/config"
	"github.com/fosdem/glexamples/lib/geometry"
	"github.com/fosdem/glexamples/lib/instancing"
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
	modeRing = iota
	modeGrid

	gridSize = 10
)

var modeNames = []string{"ring", "quad grid"}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.New("instancing", cfg, len(modeNames))
	if err != nil {
		log.Fatalf("could not set up: %s", err)
	}
	defer a.Close()
	a.Far = 4 * (cfg.Instancing.Radius + cfg.Instancing.Offset)

	ring, err := a.Shaders.Build(shaders.Spec{Vertex: "instanced.vert", Fragment: "instanced.frag"})
	if err != nil {
		log.Fatalf("could not init GL program: %s", err)
	}
	grid, err := a.Shaders.Build(shaders.Spec{
		Vertex:   "quad_instanced.vert",
		Fragment: "quad_instanced.frag",
		Data:     &shaders.ShaderData{InstanceCount: gridSize * gridSize},
	})
	if err != nil {
		log.Fatalf("could not init GL program: %s", err)
	}

	ic := cfg.Instancing
	transforms := instancing.RingTransforms(ic.Count, ic.Radius, ic.Offset, ic.Seed)
	cubes := rendering.NewVertexArray(geometry.CubeNormalVertices(), geometry.NormalLayout)
	cubes.AddInstanceMatrices(2, transforms)
	defer cubes.Delete()

	offsets := instancing.GridOffsets(gridSize, 0.1)
	quads := rendering.NewVertexArray(geometry.ColoredQuadVertices(), geometry.PointLayout)
	quads.AddInstanceOffsets(2, offsets)
	defer quads.Delete()

	a.Run(func(f *app.Frame) {
		if f.ModeChanged {
			a.Window.SetTitle(fmt.Sprintf("%s (%s)", cfg.Window.Title, modeNames[f.Mode]))
		}
		switch f.Mode {
		case modeRing:
			ring.Use()
			ring.SetMat4("view", f.View.Mul4(mgl32.HomogRotate3DY(f.Time*0.05)))
			ring.SetMat4("projection", f.Projection)
			ring.SetVec3("color", mgl32.Vec3{0.6, 0.55, 0.5})
			ring.SetVec3("lightDir", mgl32.Vec3{-0.2, -1, -0.3})
			cubes.DrawInstanced(gl.TRIANGLES, int32(len(transforms)))
		case modeGrid:
			grid.Use()
			quads.DrawInstanced(gl.TRIANGLES, int32(len(offsets)))
		}
	})
}
