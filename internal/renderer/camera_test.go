package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewCamera(t *testing.T) {
	cam := NewCamera(800, 600, 45, 0.1, 1000)

	if cam == nil {
		t.Fatal("NewCamera returned nil")
	}

	if cam.Fov != 45 {
		t.Errorf("Expected fov 45, got %f", cam.Fov)
	}

	wantAspect := float32(800) / float32(600)
	if cam.AspectRatio != wantAspect {
		t.Errorf("Expected aspect ratio %f, got %f", wantAspect, cam.AspectRatio)
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewCamera(800, 600, 45, 0.1, 1000)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.LookAt(mgl32.Vec3{0, 0, 0})

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewCamera(800, 600, 45, 0.1, 1000)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := NewCamera(800, 600, 45, 0.1, 1000)

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraLookAtOrientsFront(t *testing.T) {
	cam := NewCamera(800, 600, 45, 0.1, 1000)
	cam.Position = mgl32.Vec3{10, 0, 0}
	cam.LookAt(mgl32.Vec3{0, 0, 0})

	want := mgl32.Vec3{-1, 0, 0}
	if cam.Front.Sub(want).Len() > 1e-5 {
		t.Errorf("Expected front %v, got %v", want, cam.Front)
	}

	if math.Abs(float64(cam.Front.Len())-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", cam.Front.Len())
	}
	if math.Abs(float64(cam.Up.Len())-1.0) > 0.01 {
		t.Errorf("Up vector should be normalized, length=%f", cam.Up.Len())
	}
}

func TestCameraLookAtSelfKeepsOrientation(t *testing.T) {
	cam := NewCamera(800, 600, 45, 0.1, 1000)
	cam.Position = mgl32.Vec3{1, 2, 3}
	before := cam.Front

	cam.LookAt(cam.Position)

	if cam.Front != before {
		t.Errorf("LookAt at own position changed orientation: %v -> %v", before, cam.Front)
	}
}

func TestCameraSetFovUpdatesProjection(t *testing.T) {
	cam := NewCamera(800, 600, 45, 0.1, 1000)
	before := cam.Projection

	cam.SetFov(90)

	if cam.Projection == before {
		t.Error("SetFov should recompute the projection matrix")
	}
}

func TestCameraSetAspectRatioUpdatesProjection(t *testing.T) {
	cam := NewCamera(800, 600, 45, 0.1, 1000)
	before := cam.Projection

	cam.SetAspectRatio(2.0)

	if cam.Projection == before {
		t.Error("SetAspectRatio should recompute the projection matrix")
	}
}

func TestFrustumContainsLookedAtPoint(t *testing.T) {
	cam := NewCamera(800, 600, 45, 0.1, 1000)
	cam.Position = mgl32.Vec3{0, 0, 20}
	cam.LookAt(mgl32.Vec3{0, 0, 0})

	frustum := cam.CalculateFrustum()

	if !frustum.IntersectsSphere(mgl32.Vec3{0, 0, 0}, 1.0) {
		t.Error("The looked-at point should be inside the frustum")
	}
	if frustum.IntersectsSphere(mgl32.Vec3{0, 0, 100}, 1.0) {
		t.Error("A point far behind the camera should be outside the frustum")
	}
}
