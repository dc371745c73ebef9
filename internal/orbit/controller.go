package orbit

import (
	"github.com/CharlieDoesDev/DidItHappen/internal/renderer"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Pivot produces the look-at target for the current frame. Modeled as a
// callback so a moving target works without touching the controller.
type Pivot func() mgl32.Vec3

// Collidables returns the surfaces the camera may not pass through. The
// slice may grow between frames as assets finish loading; the controller
// tolerates an empty or growing set.
type Collidables func() []*renderer.Model

// Settings is the controller's immutable configuration snapshot.
type Settings struct {
	InitialYaw      float32
	InitialPitch    float32
	InitialDistance float32
	Limits          Limits
	Height          float32 // Vertical offset added to the pivot
	CollisionRadius float32
	Sensitivity     float32
	ZoomSensitivity float32
	Fov             float32 // Applied to the camera projection once, at setup
}

// Controller drives the camera every frame from accumulated pointer input.
// It has two modes: Idle (settle easing runs) and Dragging (raw deltas
// applied, settle suspended). Wheel zoom works in either mode.
type Controller struct {
	camera      *renderer.Camera
	input       *Translator
	limits      Limits
	state       State
	pivot       Pivot
	collidables Collidables
	height      float32
	radius      float32

	// Collision-limited distance actually rendered this frame. Kept apart
	// from state.Distance so collision never alters what the user asked for.
	renderDistance float32
}

func NewController(camera *renderer.Camera, settings Settings, pivot Pivot, collidables Collidables) *Controller {
	if pivot == nil {
		pivot = func() mgl32.Vec3 { return mgl32.Vec3{} }
	}
	if collidables == nil {
		collidables = func() []*renderer.Model { return nil }
	}
	c := &Controller{
		camera:      camera,
		input:       NewTranslator(settings.Sensitivity, settings.ZoomSensitivity),
		limits:      settings.Limits,
		pivot:       pivot,
		collidables: collidables,
		height:      settings.Height,
		radius:      settings.CollisionRadius,
	}
	// Run the initial values through the limit resolver so a config that
	// starts out of bounds comes up clamped
	c.state = State{
		Yaw:      settings.InitialYaw,
		Pitch:    settings.InitialPitch,
		Distance: settings.InitialDistance,
	}.ApplyDelta(c.limits, 0, 0, 0)
	c.renderDistance = c.state.Distance

	if settings.Fov > 0 {
		camera.SetFov(settings.Fov)
	}
	return c
}

// Attach wires the controller to a window's pointer and wheel events. Drag
// starts on left button press inside the window and ends on release or when
// the cursor leaves; other buttons are ignored.
func (c *Controller) Attach(window *glfw.Window) {
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			x, y := w.GetCursorPos()
			c.input.PointerDown(x, y)
		case glfw.Release:
			c.input.PointerUp()
		}
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		c.input.PointerMove(xpos, ypos)
	})
	window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if !entered {
			c.input.PointerUp()
		}
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, yoffset float64) {
		c.input.Scroll(yoffset)
	})
}

// Input exposes the translator, mainly so hosts and tests can feed events
// without a real window.
func (c *Controller) Input() *Translator {
	return c.input
}

// State returns the user-requested orbit state.
func (c *Controller) State() State {
	return c.state
}

// RenderDistance returns the collision-limited distance used this frame.
func (c *Controller) RenderDistance() float32 {
	return c.renderDistance
}

// Update advances the controller one frame. Runs unconditionally whether or
// not input occurred: settle easing and the collision query both need to see
// every frame, and the collidable set may have grown since the last one.
func (c *Controller) Update() {
	dYaw, dPitch, dDistance := c.input.Drain()
	c.state = c.state.ApplyDelta(c.limits, dYaw, dPitch, dDistance)
	if !c.input.Dragging() {
		c.state = c.state.Settle(c.limits)
	}

	pivot := c.pivot().Add(mgl32.Vec3{0, c.height, 0})
	dir := Direction(c.state.Yaw, c.state.Pitch)
	c.renderDistance = ResolveDistance(pivot, dir, c.state.Distance, c.collidables(), c.radius, c.limits.MinDistance)

	c.camera.Position = pivot.Add(dir.Mul(c.renderDistance))
	c.camera.LookAt(pivot)
}
