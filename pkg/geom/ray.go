// Package geom provides ray casting primitives: rays, bounding boxes,
// intersectable shapes and a bounding volume hierarchy.
package geom

import "github.com/go-gl/mathgl/mgl64"

// Ray represents a ray in 3D space with an origin and a normalized direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay creates a ray. The direction is normalized.
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
