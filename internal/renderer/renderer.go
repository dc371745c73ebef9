package renderer

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

var FrustumCullingEnabled bool = false
var FaceCullingEnabled bool = false
var Debug bool = false
var DepthTestEnabled bool = true

type Render interface {
	Init(width, height int32, window *glfw.Window)
	Render(camera Camera, lights []*Light, fog *Fog)
	AddModel(model *Model)
	RemoveModel(model *Model)
	AddEmitter(emitter *ParticleEmitter)
	SetSkybox(skybox *Skybox)
	UpdateViewport(width, height int32)
	Cleanup()
}
