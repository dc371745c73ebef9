package renderer

import (
	"fmt"

	"github.com/CharlieDoesDev/DidItHappen/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const maxShaderLights = 4

type OpenGLRenderer struct {
	sceneShader    Shader
	particleShader Shader
	Models         []*Model
	Emitters       []*ParticleEmitter
	skybox         *Skybox
	frustum        Frustum
	frustumDirty   bool
}

func (rend *OpenGLRenderer) Init(width, height int32, _ *glfw.Window) {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return
	}

	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.Viewport(0, 0, width, height)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	rend.sceneShader = InitSceneShader()
	rend.sceneShader.Compile()
	rend.particleShader = InitParticleShader()
	rend.particleShader.Compile()
	rend.frustumDirty = true

	logger.Log.Info("OpenGL renderer initialized")
}

func (rend *OpenGLRenderer) AddModel(model *Model) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(model.InterleavedData)*4, gl.Ptr(model.InterleavedData), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(model.Faces)*4, gl.Ptr(model.Faces), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	model.VAO = vao
	model.VBO = vbo
	model.EBO = ebo

	model.UpdateModelMatrix()

	rend.Models = append(rend.Models, model)
}

func (rend *OpenGLRenderer) RemoveModel(model *Model) {
	for i, m := range rend.Models {
		if m == model {
			rend.Models = append(rend.Models[:i], rend.Models[i+1:]...)
			break
		}
	}
}

func (rend *OpenGLRenderer) AddEmitter(emitter *ParticleEmitter) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(emitter.Positions())*4, gl.Ptr(emitter.Positions()), gl.DYNAMIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	emitter.VAO = vao
	emitter.VBO = vbo

	rend.Emitters = append(rend.Emitters, emitter)
}

func (rend *OpenGLRenderer) SetSkybox(skybox *Skybox) {
	rend.skybox = skybox
}

func (rend *OpenGLRenderer) Render(camera Camera, lights []*Light, fog *Fog) {
	if rend.skybox != nil {
		gl.ClearColor(rend.skybox.Color.X(), rend.skybox.Color.Y(), rend.skybox.Color.Z(), 1.0)
	} else {
		gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	}
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	if FaceCullingEnabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	viewProjection := camera.GetViewProjection()

	if FrustumCullingEnabled {
		// The orbit camera moves nearly every frame, recompute each time
		rend.frustum = camera.CalculateFrustum()
	}

	rend.sceneShader.Use()
	rend.sceneShader.SetMat4("viewProjection", viewProjection)
	rend.sceneShader.SetVec3("viewPos", camera.Position)
	rend.setLightUniforms(&rend.sceneShader, lights)
	rend.setFogUniforms(&rend.sceneShader, fog)

	for _, model := range rend.Models {
		if FrustumCullingEnabled && !rend.frustum.IntersectsSphere(model.BoundingSphereCenter, model.BoundingSphereRadius) {
			continue
		}

		material := model.Material
		if material == nil {
			material = DefaultMaterial
		}
		rend.sceneShader.SetMat4("model", model.ModelMatrix)
		rend.sceneShader.SetVec3("diffuseColor", mgl32.Vec3{material.DiffuseColor[0], material.DiffuseColor[1], material.DiffuseColor[2]})
		rend.sceneShader.SetVec3("specularColor", mgl32.Vec3{material.SpecularColor[0], material.SpecularColor[1], material.SpecularColor[2]})
		rend.sceneShader.SetFloat("shininess", material.Shininess)
		rend.sceneShader.SetFloat("alpha", material.Alpha)

		gl.BindVertexArray(model.VAO)
		gl.DrawElements(gl.TRIANGLES, int32(len(model.Faces)), gl.UNSIGNED_INT, gl.PtrOffset(0))
	}
	gl.BindVertexArray(0)

	rend.renderParticles(camera, fog)
}

func (rend *OpenGLRenderer) renderParticles(camera Camera, fog *Fog) {
	if len(rend.Emitters) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false) // Particles read depth but don't write it

	rend.particleShader.Use()
	rend.particleShader.SetMat4("viewProjection", camera.GetViewProjection())
	rend.particleShader.SetVec3("viewPos", camera.Position)
	rend.setFogUniforms(&rend.particleShader, fog)

	for _, emitter := range rend.Emitters {
		positions := emitter.Positions()
		gl.BindBuffer(gl.ARRAY_BUFFER, emitter.VBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(positions)*4, gl.Ptr(positions))

		rend.particleShader.SetVec3("particleColor", emitter.Color)
		rend.particleShader.SetFloat("pointSize", emitter.Size)

		gl.BindVertexArray(emitter.VAO)
		gl.DrawArrays(gl.POINTS, 0, int32(emitter.Count()))
	}
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

func (rend *OpenGLRenderer) setLightUniforms(shader *Shader, lights []*Light) {
	count := len(lights)
	if count > maxShaderLights {
		count = maxShaderLights
	}
	shader.SetInt("lightCount", int32(count))
	for i := 0; i < count; i++ {
		light := lights[i]
		prefix := fmt.Sprintf("lights[%d].", i)
		if light.Mode == "directional" {
			shader.SetInt(prefix+"isDirectional", 1)
		} else {
			shader.SetInt(prefix+"isDirectional", 0)
		}
		shader.SetVec3(prefix+"position", light.Position)
		shader.SetVec3(prefix+"direction", light.Direction)
		shader.SetVec3(prefix+"color", light.Color)
		shader.SetFloat(prefix+"intensity", light.Intensity)
		shader.SetFloat(prefix+"ambientStrength", light.AmbientStrength)
		shader.SetFloat(prefix+"constantAtten", light.ConstantAtten)
		shader.SetFloat(prefix+"linearAtten", light.LinearAtten)
		shader.SetFloat(prefix+"quadraticAtten", light.QuadraticAtten)
	}
}

func (rend *OpenGLRenderer) setFogUniforms(shader *Shader, fog *Fog) {
	if fog != nil && fog.Enabled {
		shader.SetInt("fogEnabled", 1)
		shader.SetVec3("fogColor", fog.Color)
		shader.SetFloat("fogNear", fog.Near)
		shader.SetFloat("fogFar", fog.Far)
	} else {
		shader.SetInt("fogEnabled", 0)
	}
}

func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) Cleanup() {
	for _, model := range rend.Models {
		gl.DeleteVertexArrays(1, &model.VAO)
		gl.DeleteBuffers(1, &model.VBO)
		gl.DeleteBuffers(1, &model.EBO)
	}
	for _, emitter := range rend.Emitters {
		gl.DeleteVertexArrays(1, &emitter.VAO)
		gl.DeleteBuffers(1, &emitter.VBO)
	}
}
