package engine

import (
	"runtime"

	"github.com/CharlieDoesDev/DidItHappen/internal/config"
	"github.com/CharlieDoesDev/DidItHappen/internal/loader"
	"github.com/CharlieDoesDev/DidItHappen/internal/logger"
	"github.com/CharlieDoesDev/DidItHappen/internal/orbit"
	"github.com/CharlieDoesDev/DidItHappen/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Viewer owns the window and wires the scene described by the config to the
// renderer and the orbit camera controller.
type Viewer struct {
	Width     int32
	Height    int32
	ModelChan chan *renderer.Model
	Lights    []*renderer.Light
	Fog       *renderer.Fog
	Camera    *renderer.Camera

	cfg         config.SceneConfig
	rendererAPI renderer.Render
	window      *glfw.Window
	skybox      *renderer.Skybox
	controller  *orbit.Controller
	emitters    []*renderer.ParticleEmitter

	// All models added so far; the controller borrows this set for its
	// collision query, so it only ever grows during a session.
	models []*renderer.Model
}

func NewViewer(cfg config.SceneConfig) *Viewer {
	logger.Init()
	logger.Log.Info("Viewer initializing...")
	return &Viewer{
		cfg:         cfg,
		rendererAPI: &renderer.OpenGLRenderer{},
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		ModelChan:   make(chan *renderer.Model, 64),
	}
}

// Run opens the window, builds the scene and blocks in the render loop until
// the window closes.
func (v *Viewer) Run(x, y int) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 32)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(v.Width), int(v.Height), v.cfg.Window.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return err
	}
	v.window = window
	window.MakeContextCurrent()
	window.SetPos(x, y)
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	v.rendererAPI.Init(v.Width, v.Height, window)

	cam := v.cfg.Camera
	v.Camera = renderer.NewCamera(v.Width, v.Height, cam.Fov, cam.Near, cam.Far)

	v.controller = orbit.NewController(v.Camera, orbit.Settings{
		InitialYaw:      cam.InitialYaw,
		InitialPitch:    cam.InitialPitch,
		InitialDistance: cam.InitialDistance,
		Limits: orbit.Limits{
			Yaw:         orbit.AxisLimits{Min: cam.MinYaw, Max: cam.MaxYaw, Overshoot: cam.OvershootYaw},
			Pitch:       orbit.AxisLimits{Min: cam.MinPitch, Max: cam.MaxPitch, Overshoot: cam.OvershootPitch},
			MinDistance: cam.MinDistance,
			MaxDistance: cam.MaxDistance,
		},
		Height:          cam.Height,
		CollisionRadius: cam.CollisionRadius,
		Sensitivity:     cam.Sensitivity,
		ZoomSensitivity: cam.ZoomSensitivity,
		Fov:             cam.Fov,
	}, func() mgl32.Vec3 {
		// The presented scene orbits the world origin
		return mgl32.Vec3{}
	}, func() []*renderer.Model {
		return v.models
	})
	v.controller.Attach(window)

	v.buildScene()
	v.renderLoop()
	return nil
}

// buildScene turns the declarative config into renderer objects. OBJ models
// load on goroutines and arrive through ModelChan while frames are already
// running.
func (v *Viewer) buildScene() {
	cfg := v.cfg

	v.skybox = renderer.CreateSolidColorSkybox(cfg.Background.R, cfg.Background.G, cfg.Background.B)
	v.rendererAPI.SetSkybox(v.skybox)

	v.Fog = &renderer.Fog{
		Enabled: cfg.Fog.Enabled,
		Color:   mgl32.Vec3{cfg.Fog.Color.R, cfg.Fog.Color.G, cfg.Fog.Color.B},
		Near:    cfg.Fog.Near,
		Far:     cfg.Fog.Far,
	}

	for _, lc := range cfg.Lights {
		v.Lights = append(v.Lights, buildLight(lc))
	}
	if len(v.Lights) == 0 {
		// A scene with no configured lights still has to be visible
		v.Lights = append(v.Lights, renderer.CreateSunlight(mgl32.Vec3{0.3, 0.8, 0.5}))
	}

	for i, pc := range cfg.Particles {
		seed := pc.Seed
		if seed == 0 {
			seed = int64(i + 1)
		}
		emitter := renderer.NewParticleEmitter(pc.Count, mgl32.Vec3{pc.Origin.X, pc.Origin.Y, pc.Origin.Z}, pc.Spread, seed)
		if pc.Color != (config.ColorConfig{}) {
			emitter.Color = mgl32.Vec3{pc.Color.R, pc.Color.G, pc.Color.B}
		}
		if pc.Size > 0 {
			emitter.Size = pc.Size
		}
		if pc.Drift > 0 {
			emitter.Drift = pc.Drift
		}
		if pc.Turbulence > 0 {
			emitter.Turbulence = pc.Turbulence
		}
		if pc.Lifetime > 0 {
			emitter.Lifetime = pc.Lifetime
		}
		v.emitters = append(v.emitters, emitter)
		v.rendererAPI.AddEmitter(emitter)
	}

	if cfg.Floor.Enabled {
		gridSize := cfg.Floor.GridSize
		if gridSize < 2 {
			gridSize = 32
		}
		spacing := cfg.Floor.GridSpacing
		if spacing <= 0 {
			spacing = 1.0
		}
		floor, err := loader.LoadPlane(gridSize, spacing)
		if err != nil {
			logger.Log.Error("Could not build floor", zap.Error(err))
		} else {
			if cfg.Floor.Diffuse != (config.ColorConfig{}) {
				floor.SetDiffuseColor(cfg.Floor.Diffuse.R, cfg.Floor.Diffuse.G, cfg.Floor.Diffuse.B)
			}
			floor.Collidable = cfg.Floor.Collidable
			floor.Name = "floor"
			v.addModel(floor)
		}
	}

	for _, mc := range cfg.Models {
		mc := mc
		go func() {
			model, err := loader.LoadModel(mc.Path)
			if err != nil {
				logger.Log.Error("Could not load model", zap.String("path", mc.Path), zap.Error(err))
				return
			}
			scale := mc.Scale
			if scale == (config.Vec3Config{}) {
				scale = config.Vec3Config{X: 1, Y: 1, Z: 1}
			}
			model.SetScale(scale.X, scale.Y, scale.Z)
			model.Rotate(mc.Rotation.X, mc.Rotation.Y, mc.Rotation.Z)
			model.SetPosition(mc.Position.X, mc.Position.Y, mc.Position.Z)
			if mc.Diffuse != (config.ColorConfig{}) {
				model.SetDiffuseColor(mc.Diffuse.R, mc.Diffuse.G, mc.Diffuse.B)
			}
			model.Collidable = mc.Collidable
			v.ModelChan <- model
		}()
	}
}

func buildLight(lc config.LightConfig) *renderer.Light {
	color := mgl32.Vec3{lc.Color.R, lc.Color.G, lc.Color.B}
	if color == (mgl32.Vec3{}) {
		color = mgl32.Vec3{1, 1, 1}
	}
	intensity := lc.Intensity
	if intensity <= 0 {
		intensity = 1.0
	}

	var light *renderer.Light
	if lc.Mode == "directional" {
		direction := mgl32.Vec3{lc.Direction.X, lc.Direction.Y, lc.Direction.Z}
		if direction == (mgl32.Vec3{}) {
			direction = mgl32.Vec3{0, -1, 0}
		}
		light = renderer.CreateDirectionalLight(direction, color, intensity)
	} else {
		lightRange := lc.Range
		if lightRange <= 0 {
			lightRange = 100.0
		}
		light = renderer.CreatePointLight(mgl32.Vec3{lc.Position.X, lc.Position.Y, lc.Position.Z}, color, intensity, lightRange)
	}
	if lc.AmbientStrength > 0 {
		light.AmbientStrength = lc.AmbientStrength
	}
	return light
}

// addModel registers a model with the renderer and the collidable set.
func (v *Viewer) addModel(model *renderer.Model) {
	v.rendererAPI.AddModel(model)
	v.models = append(v.models, model)
}

func (v *Viewer) renderLoop() {
	var lastTime = glfw.GetTime()
	var lastWidth, lastHeight = v.Width, v.Height

	for !v.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		actualWidth, actualHeight := v.window.GetSize()
		if int32(actualWidth) != v.Width || int32(actualHeight) != v.Height {
			v.Width = int32(actualWidth)
			v.Height = int32(actualHeight)
		}
		if v.Width != lastWidth || v.Height != lastHeight {
			v.rendererAPI.UpdateViewport(v.Width, v.Height)
			v.Camera.SetAspectRatio(float32(v.Width) / float32(v.Height))
			lastWidth, lastHeight = v.Width, v.Height
		}

		// Drain async-loaded models before the collision query so this
		// frame sees a stable set
		v.drainModels()

		for _, emitter := range v.emitters {
			emitter.Update(float32(deltaTime))
		}

		v.controller.Update()

		v.rendererAPI.Render(*v.Camera, v.Lights, v.Fog)

		v.window.SwapBuffers()
		glfw.PollEvents()
	}
	v.rendererAPI.Cleanup()
}

func (v *Viewer) drainModels() {
	for {
		select {
		case model := <-v.ModelChan:
			v.addModel(model)
		default:
			return
		}
	}
}

// AddModel queues a model for the next frame. Safe to call from loader
// goroutines.
func (v *Viewer) AddModel(model *renderer.Model) {
	v.ModelChan <- model
}

// Controller exposes the orbit controller, mainly for hosts that drive
// update themselves.
func (v *Viewer) Controller() *orbit.Controller {
	return v.controller
}

func (v *Viewer) SetDebugMode(debug bool) {
	renderer.Debug = debug
}

func (v *Viewer) SetFrustumCulling(enabled bool) {
	renderer.FrustumCullingEnabled = enabled
}

func (v *Viewer) SetFaceCulling(enabled bool) {
	renderer.FaceCullingEnabled = enabled
}

// UpdateSkyboxColor updates the background color at runtime.
func (v *Viewer) UpdateSkyboxColor(r, g, b float32) {
	if v.skybox != nil {
		v.skybox.UpdateColor(r, g, b)
	}
}

func (v *Viewer) GetMousePosition() mgl32.Vec2 {
	x, y := v.window.GetCursorPos()
	return mgl32.Vec2{float32(x), float32(y)}
}
