package geom

import "github.com/go-gl/mathgl/mgl64"

// HitRecord describes a ray-surface intersection.
type HitRecord struct {
	Point     mgl64.Vec3 // Point of intersection
	Normal    mgl64.Vec3 // Surface normal at the intersection, facing the ray
	T         float64    // Parameter t along the ray
	FrontFace bool       // Whether the ray struck the front face
}

// SetFaceNormal orients the normal against the ray and records which face was hit.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal mgl64.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Mul(-1)
	}
}

// Shape is anything a ray can intersect.
type Shape interface {
	// Hit tests the ray against the shape within [tMin, tMax] and returns
	// the nearest intersection, if any.
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	// Bounds returns the shape's bounding box.
	Bounds() AABB
}
