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

var modeNames = []string{"reflection", "refraction"}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.New("skybox", cfg, len(modeNames))
	if err != nil {
		log.Fatalf("could not set up: %s", err)
	}
	defer a.Close()

	envmap, err := a.Shaders.Build(shaders.Spec{Vertex: "envmap.vert", Fragment: "envmap.frag"})
	if err != nil {
		log.Fatalf("could not init GL program: %s", err)
	}
	sky, err := a.Shaders.Build(shaders.Spec{Vertex: "skybox.vert", Fragment: "skybox.frag"})
	if err != nil {
		log.Fatalf("could not init GL program: %s", err)
	}

	cubemap, err := rendering.LoadCubemap(cfg.Assets.SkyboxFaces())
	if err != nil {
		log.Fatalf("could not load skybox: %s", err)
	}
	defer rendering.DeleteTexture(cubemap)

	cube := rendering.NewVertexArray(geometry.CubeNormalVertices(), geometry.NormalLayout)
	defer cube.Delete()
	skybox := rendering.NewVertexArray(geometry.SkyboxVertices(), geometry.PositionLayout)
	defer skybox.Delete()

	a.Run(func(f *app.Frame) {
		if f.ModeChanged {
			a.Window.SetTitle(fmt.Sprintf("%s (%s)", cfg.Window.Title, modeNames[f.Mode]))
		}
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, cubemap)

		envmap.Use()
		envmap.SetInt("skybox", 0)
		envmap.SetInt("mode", int32(f.Mode))
		envmap.SetMat4("model", mgl32.HomogRotate3DY(f.Time*0.3))
		envmap.SetMat4("view", f.View)
		envmap.SetMat4("projection", f.Projection)
		envmap.SetVec3("viewPos", f.Camera.Position())
		cube.Draw(gl.TRIANGLES)

		// drawn last at maximum depth, so only where nothing else is
		gl.DepthFunc(gl.LEQUAL)
		sky.Use()
		sky.SetInt("skybox", 0)
		sky.SetMat4("view", f.View.Mat3().Mat4())
		sky.SetMat4("projection", f.Projection)
		skybox.Draw(gl.TRIANGLES)
		gl.DepthFunc(gl.LESS)
	})
}
