package geom

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane is an infinite plane defined by a point and a normal. It stands in
// for large ground surfaces that would be wasteful to triangulate.
type Plane struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
}

// NewPlane creates a plane. The normal is normalized.
func NewPlane(point, normal mgl64.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

// Hit tests the ray against the plane.
func (p *Plane) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if gomath.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Sub(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	rec := &HitRecord{T: t, Point: ray.At(t)}
	rec.SetFaceNormal(ray, p.Normal)
	return rec, true
}

// Bounds returns a large box around the plane. Axis-aligned planes get a thin
// slab so BVH partitioning stays useful.
func (p *Plane) Bounds() AABB {
	const large = 1e6
	const thickness = 1e-3

	for axis := 0; axis < 3; axis++ {
		if gomath.Abs(gomath.Abs(p.Normal[axis])-1) < 1e-9 {
			min := mgl64.Vec3{-large, -large, -large}
			max := mgl64.Vec3{large, large, large}
			min[axis] = p.Point[axis] - thickness
			max[axis] = p.Point[axis] + thickness
			return AABB{Min: min, Max: max}
		}
	}
	return AABB{
		Min: mgl64.Vec3{-large, -large, -large},
		Max: mgl64.Vec3{large, large, large},
	}
}
