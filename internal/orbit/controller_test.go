package orbit

import (
	"math"
	"testing"

	"github.com/CharlieDoesDev/DidItHappen/internal/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

func testSettings() Settings {
	return Settings{
		InitialYaw:      0,
		InitialPitch:    20,
		InitialDistance: 10,
		Limits: Limits{
			Pitch:       AxisLimits{Min: -85, Max: 85},
			MinDistance: 1,
			MaxDistance: 100,
		},
		CollisionRadius: 0.25,
		Sensitivity:     0.25,
		ZoomSensitivity: 1.0,
	}
}

func newTestController(settings Settings, collidables Collidables) (*Controller, *renderer.Camera) {
	camera := renderer.NewCamera(800, 600, 45, 0.1, 1000)
	return NewController(camera, settings, nil, collidables), camera
}

func TestUpdateIsIdempotentWithoutInput(t *testing.T) {
	ctrl, camera := newTestController(testSettings(), nil)

	ctrl.Update()
	firstPos := camera.Position
	firstFront := camera.Front

	ctrl.Update()
	if camera.Position != firstPos {
		t.Errorf("Position changed without input: %v -> %v", firstPos, camera.Position)
	}
	if camera.Front != firstFront {
		t.Errorf("Orientation changed without input: %v -> %v", firstFront, camera.Front)
	}
}

func TestDragAppliesSensitivityScaledDeltas(t *testing.T) {
	settings := testSettings()
	settings.InitialPitch = 0
	ctrl, _ := newTestController(settings, nil)

	ctrl.Input().PointerDown(100, 100)
	ctrl.Input().PointerMove(140, 100) // 40px right
	ctrl.Update()

	// 40px * 0.25 deg/px = 10 degrees of yaw, dragging right increases yaw
	if math.Abs(float64(ctrl.State().Yaw-10)) > 1e-4 {
		t.Errorf("Expected yaw 10 after 40px drag, got %f", ctrl.State().Yaw)
	}
}

func TestDragUpIncreasesPitch(t *testing.T) {
	settings := testSettings()
	settings.InitialPitch = 0
	ctrl, _ := newTestController(settings, nil)

	ctrl.Input().PointerDown(100, 100)
	ctrl.Input().PointerMove(100, 60) // 40px up
	ctrl.Update()

	if math.Abs(float64(ctrl.State().Pitch-10)) > 1e-4 {
		t.Errorf("Expected pitch 10 after upward drag, got %f", ctrl.State().Pitch)
	}
}

func TestPointerMoveIgnoredOutsideDrag(t *testing.T) {
	ctrl, _ := newTestController(testSettings(), nil)

	before := ctrl.State()
	ctrl.Input().PointerMove(500, 500)
	ctrl.Update()

	if ctrl.State().Yaw != before.Yaw || ctrl.State().Pitch != before.Pitch {
		t.Errorf("Pointer motion without a drag changed the state: %+v -> %+v", before, ctrl.State())
	}
}

func TestScrollZoomsInEitherMode(t *testing.T) {
	ctrl, _ := newTestController(testSettings(), nil)

	// Idle mode: scroll up zooms in
	ctrl.Input().Scroll(2)
	ctrl.Update()
	if ctrl.State().Distance != 8 {
		t.Errorf("Expected distance 8 after idle scroll, got %f", ctrl.State().Distance)
	}

	// Dragging mode: wheel still applies without leaving the drag
	ctrl.Input().PointerDown(0, 0)
	ctrl.Input().Scroll(-3)
	ctrl.Update()
	if ctrl.State().Distance != 11 {
		t.Errorf("Expected distance 11 after drag scroll, got %f", ctrl.State().Distance)
	}
	if !ctrl.Input().Dragging() {
		t.Error("Scroll must not end the drag")
	}
}

func TestSettleSuspendedWhileDragging(t *testing.T) {
	settings := testSettings()
	settings.Limits.Yaw = AxisLimits{Min: -45, Max: 45, Overshoot: 15}
	settings.InitialYaw = 60 // Fully overshot
	ctrl, _ := newTestController(settings, nil)

	ctrl.Input().PointerDown(0, 0)
	ctrl.Update()
	if ctrl.State().Yaw != 60 {
		t.Errorf("Settle ran during a drag: yaw %f", ctrl.State().Yaw)
	}

	ctrl.Input().PointerUp()
	ctrl.Update()
	if ctrl.State().Yaw >= 60 {
		t.Errorf("Settle did not run after the drag ended: yaw %f", ctrl.State().Yaw)
	}
}

func TestSettleReachesHardLimitThroughUpdates(t *testing.T) {
	settings := testSettings()
	settings.Limits.Yaw = AxisLimits{Min: -45, Max: 45, Overshoot: 15}
	settings.InitialYaw = 60
	ctrl, _ := newTestController(settings, nil)

	for i := 0; i < 200; i++ {
		ctrl.Update()
		if ctrl.State().Yaw == 45 {
			return
		}
	}
	t.Errorf("Yaw never settled to 45, stuck at %f", ctrl.State().Yaw)
}

func TestCollisionPreservesRequestedDistance(t *testing.T) {
	settings := testSettings()
	settings.InitialYaw = 0
	settings.InitialPitch = 0
	settings.InitialDistance = 20

	wall := wallAt(5)
	ctrl, camera := newTestController(settings, func() []*renderer.Model {
		return []*renderer.Model{wall}
	})

	ctrl.Update()

	if math.Abs(float64(ctrl.RenderDistance())-4.75) > 1e-4 {
		t.Errorf("Expected render distance 4.75, got %f", ctrl.RenderDistance())
	}
	// The user's requested distance survives the collision clamp
	if ctrl.State().Distance != 20 {
		t.Errorf("Collision altered the requested distance: %f", ctrl.State().Distance)
	}
	if math.Abs(float64(camera.Position.X())-4.75) > 1e-3 {
		t.Errorf("Expected camera at x=4.75, got %v", camera.Position)
	}
}

func TestCollidableSetMayGrowBetweenFrames(t *testing.T) {
	settings := testSettings()
	settings.InitialYaw = 0
	settings.InitialPitch = 0
	settings.InitialDistance = 20

	var models []*renderer.Model
	ctrl, _ := newTestController(settings, func() []*renderer.Model {
		return models
	})

	ctrl.Update()
	if ctrl.RenderDistance() != 20 {
		t.Fatalf("Expected unobstructed distance 20, got %f", ctrl.RenderDistance())
	}

	// An asset finishes loading between frames
	models = append(models, wallAt(5))
	ctrl.Update()
	if math.Abs(float64(ctrl.RenderDistance())-4.75) > 1e-4 {
		t.Errorf("Expected render distance 4.75 after the set grew, got %f", ctrl.RenderDistance())
	}
}

func TestHeightOffsetsPivot(t *testing.T) {
	settings := testSettings()
	settings.Height = 2
	settings.InitialYaw = 0
	settings.InitialPitch = 0
	settings.InitialDistance = 10
	ctrl, camera := newTestController(settings, nil)

	ctrl.Update()

	want := mgl32.Vec3{10, 2, 0}
	if camera.Position.Sub(want).Len() > 1e-4 {
		t.Errorf("Expected camera at %v, got %v", want, camera.Position)
	}
	// Camera looks back at the raised pivot
	lookDir := mgl32.Vec3{0, 2, 0}.Sub(camera.Position).Normalize()
	if camera.Front.Sub(lookDir).Len() > 1e-4 {
		t.Errorf("Expected front %v, got %v", lookDir, camera.Front)
	}
}

func TestMovingPivotTracksCallback(t *testing.T) {
	settings := testSettings()
	settings.InitialYaw = 0
	settings.InitialPitch = 0
	settings.InitialDistance = 10

	target := mgl32.Vec3{}
	camera := renderer.NewCamera(800, 600, 45, 0.1, 1000)
	ctrl := NewController(camera, settings, func() mgl32.Vec3 { return target }, nil)

	ctrl.Update()
	first := camera.Position

	target = mgl32.Vec3{0, 0, 5}
	ctrl.Update()

	want := first.Add(mgl32.Vec3{0, 0, 5})
	if camera.Position.Sub(want).Len() > 1e-4 {
		t.Errorf("Camera did not follow the pivot: expected %v, got %v", want, camera.Position)
	}
}

func TestFovAppliedAtSetup(t *testing.T) {
	camera := renderer.NewCamera(800, 600, 45, 0.1, 1000)
	settings := testSettings()
	settings.Fov = 60
	NewController(camera, settings, nil, nil)

	if camera.Fov != 60 {
		t.Errorf("Expected fov 60 applied at setup, got %f", camera.Fov)
	}
}

func TestInitialStateClampedAgainstLimits(t *testing.T) {
	settings := testSettings()
	settings.Limits.Yaw = AxisLimits{Min: -45, Max: 45}
	settings.InitialYaw = 300
	settings.InitialDistance = 500
	ctrl, _ := newTestController(settings, nil)

	if ctrl.State().Yaw != 45 {
		t.Errorf("Expected initial yaw clamped to 45, got %f", ctrl.State().Yaw)
	}
	if ctrl.State().Distance != 100 {
		t.Errorf("Expected initial distance clamped to 100, got %f", ctrl.State().Distance)
	}
}
