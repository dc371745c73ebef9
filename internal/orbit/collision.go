package orbit

import (
	"math"

	"github.com/CharlieDoesDev/DidItHappen/internal/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction returns the unit vector pointing from the pivot toward the
// camera for the given yaw and pitch, in degrees.
func Direction(yaw, pitch float32) mgl32.Vec3 {
	yawRad := float64(mgl32.DegToRad(yaw))
	pitchRad := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// ResolveDistance returns the longest camera distance along dir from pivot,
// no farther than desired, that keeps a safety sphere of the given radius
// clear of the collidable models. Collision only ever shortens the distance:
// with no surface within desired range, desired is returned unchanged. If
// the nearest surface is closer than the camera can back away from, the
// configured minimum distance wins rather than failing.
func ResolveDistance(pivot, dir mgl32.Vec3, desired float32, models []*renderer.Model, radius, minDistance float32) float32 {
	if desired <= 0 || len(models) == 0 {
		return desired
	}

	ray := renderer.Ray{Origin: pivot, Direction: dir}
	hit, d, _ := renderer.RayNearestModelHit(ray, models)
	if !hit || d > desired {
		return desired
	}

	safe := d - radius
	if safe < minDistance {
		return minDistance
	}
	return safe
}
