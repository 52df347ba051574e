package geom

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is a single triangle defined by three vertices in counter-clockwise
// winding order.
type Triangle struct {
	V0, V1, V2 mgl64.Vec3
	normal     mgl64.Vec3
	bounds     AABB
}

// NewTriangle creates a triangle and precomputes its geometric normal and bounds.
func NewTriangle(v0, v1, v2 mgl64.Vec3) *Triangle {
	tri := &Triangle{V0: v0, V1: v1, V2: v2}
	tri.normal = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()

	min := mgl64.Vec3{
		gomath.Min(v0.X(), gomath.Min(v1.X(), v2.X())),
		gomath.Min(v0.Y(), gomath.Min(v1.Y(), v2.Y())),
		gomath.Min(v0.Z(), gomath.Min(v1.Z(), v2.Z())),
	}
	max := mgl64.Vec3{
		gomath.Max(v0.X(), gomath.Max(v1.X(), v2.X())),
		gomath.Max(v0.Y(), gomath.Max(v1.Y(), v2.Y())),
		gomath.Max(v0.Z(), gomath.Max(v1.Z(), v2.Z())),
	}
	// Pad so axis-aligned triangles don't produce a zero-width box
	const pad = 1e-8
	tri.bounds = AABB{
		Min: min.Sub(mgl64.Vec3{pad, pad, pad}),
		Max: max.Add(mgl64.Vec3{pad, pad, pad}),
	}
	return tri
}

// Hit tests the ray against the triangle using the Moller-Trumbore algorithm.
func (tr *Triangle) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	edge1 := tr.V1.Sub(tr.V0)
	edge2 := tr.V2.Sub(tr.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray parallel to the triangle plane
	if gomath.Abs(a) < 1e-12 {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(tr.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return nil, false
	}

	t := f * edge2.Dot(q)
	if t < tMin || t > tMax {
		return nil, false
	}

	rec := &HitRecord{T: t, Point: ray.At(t)}
	rec.SetFaceNormal(ray, tr.normal)
	return rec, true
}

// Bounds returns the triangle's padded bounding box.
func (tr *Triangle) Bounds() AABB {
	return tr.bounds
}
