package orbit

// Translator accumulates raw pointer and wheel motion and converts it into
// yaw/pitch/distance deltas. Callbacks may fire at any time; the controller
// drains the accumulated deltas exactly once per frame, so everything here
// is touched from the single render thread only.
//
// Sign conventions: dragging right increases yaw (content on the left
// rotates into view), dragging up increases pitch (the camera rises), and
// scrolling up zooms in (decreases distance).
//
// Only a single-pointer drag and a vertical wheel axis are supported; any
// other input is silently ignored.
type Translator struct {
	Sensitivity     float32 // Pointer pixels to degrees
	ZoomSensitivity float32 // Wheel steps to distance units

	dragging     bool
	lastX, lastY float64

	dYaw, dPitch, dDistance float32
}

func NewTranslator(sensitivity, zoomSensitivity float32) *Translator {
	return &Translator{
		Sensitivity:     sensitivity,
		ZoomSensitivity: zoomSensitivity,
	}
}

// PointerDown begins a drag at the given cursor position.
func (t *Translator) PointerDown(x, y float64) {
	t.dragging = true
	t.lastX, t.lastY = x, y
}

// PointerUp ends the drag. Also called when the pointer leaves the surface.
func (t *Translator) PointerUp() {
	t.dragging = false
}

// PointerMove records drag motion. Motion outside an active drag is ignored.
func (t *Translator) PointerMove(x, y float64) {
	if !t.dragging {
		return
	}
	t.dYaw += float32(x-t.lastX) * t.Sensitivity
	// Screen y grows downward, pitch grows upward
	t.dPitch += float32(t.lastY-y) * t.Sensitivity
	t.lastX, t.lastY = x, y
}

// Scroll records wheel motion. Works in either controller mode.
func (t *Translator) Scroll(yoffset float64) {
	t.dDistance -= float32(yoffset) * t.ZoomSensitivity
}

func (t *Translator) Dragging() bool {
	return t.dragging
}

// Drain returns the deltas accumulated since the last call and resets them.
func (t *Translator) Drain() (dYaw, dPitch, dDistance float32) {
	dYaw, dPitch, dDistance = t.dYaw, t.dPitch, t.dDistance
	t.dYaw, t.dPitch, t.dDistance = 0, 0, 0
	return dYaw, dPitch, dDistance
}
