package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// RayIntersectSphere tests if a ray intersects a sphere
// Returns: (intersected, distance, intersection point)
func RayIntersectSphere(ray Ray, sphereCenter mgl32.Vec3, radius float32) (bool, float32, mgl32.Vec3) {
	oc := ray.Origin.Sub(sphereCenter)

	// Coefficients for the quadratic equation
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false, 0, mgl32.Vec3{}
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// Closest intersection (smallest positive t)
	var t float32
	if t1 > 0 && t2 > 0 {
		if t1 < t2 {
			t = t1
		} else {
			t = t2
		}
	} else if t1 > 0 {
		t = t1
	} else if t2 > 0 {
		t = t2
	} else {
		// Both intersections are behind the ray origin
		return false, 0, mgl32.Vec3{}
	}

	intersectionPoint := ray.Origin.Add(ray.Direction.Mul(t))
	return true, t, intersectionPoint
}

// RayIntersectTriangle tests if a ray intersects a triangle
// Returns: (intersected, distance, intersection point)
// Uses Möller-Trumbore algorithm
func RayIntersectTriangle(ray Ray, v0, v1, v2 mgl32.Vec3) (bool, float32, mgl32.Vec3) {
	const epsilon = 0.0000001

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	if a > -epsilon && a < epsilon {
		return false, 0, mgl32.Vec3{} // Ray is parallel to triangle
	}

	f := 1.0 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)

	if u < 0.0 || u > 1.0 {
		return false, 0, mgl32.Vec3{}
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)

	if v < 0.0 || u+v > 1.0 {
		return false, 0, mgl32.Vec3{}
	}

	t := f * edge2.Dot(q)
	if t > epsilon {
		intersectionPoint := ray.Origin.Add(ray.Direction.Mul(t))
		return true, t, intersectionPoint
	}

	return false, 0, mgl32.Vec3{} // Line intersection but not ray intersection
}

// RayIntersectModel tests if a ray intersects a model. The bounding sphere
// rejects most misses cheaply; actual hits are confirmed per triangle so the
// camera collision distance is exact.
// Returns: (intersected, distance, intersection point)
func RayIntersectModel(ray Ray, model *Model) (bool, float32, mgl32.Vec3) {
	if hit, _, _ := RayIntersectSphere(ray, model.BoundingSphereCenter, model.BoundingSphereRadius); !hit {
		// Sphere test misses when the origin is outside; an origin inside the
		// sphere still reports the exit hit, so a miss here is a true miss.
		if ray.Origin.Sub(model.BoundingSphereCenter).Len() > model.BoundingSphereRadius {
			return false, 0, mgl32.Vec3{}
		}
	}

	found := false
	var nearest float32
	var nearestPoint mgl32.Vec3
	for i := 0; i < model.TriangleCount(); i++ {
		v0, v1, v2 := model.Triangle(i)
		hit, t, point := RayIntersectTriangle(ray, v0, v1, v2)
		if hit && (!found || t < nearest) {
			found = true
			nearest = t
			nearestPoint = point
		}
	}
	return found, nearest, nearestPoint
}

// RayNearestModelHit returns the closest intersection between the ray and any
// model in the set. Models not flagged Collidable are skipped.
// Returns: (intersected, distance, model hit)
func RayNearestModelHit(ray Ray, models []*Model) (bool, float32, *Model) {
	found := false
	var nearest float32
	var nearestModel *Model

	// Snapshot the length: the set may grow from asset loads mid-frame
	count := len(models)
	for i := 0; i < count; i++ {
		model := models[i]
		if model == nil || !model.Collidable {
			continue
		}
		hit, t, _ := RayIntersectModel(ray, model)
		if hit && (!found || t < nearest) {
			found = true
			nearest = t
			nearestModel = model
		}
	}
	return found, nearest, nearestModel
}
