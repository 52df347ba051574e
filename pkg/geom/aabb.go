package geom

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB creates an AABB from two corners, swapping components as needed so
// Min holds the smaller value on every axis.
func NewAABB(a, b mgl64.Vec3) AABB {
	box := AABB{Min: a, Max: b}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// Union returns the smallest AABB containing both boxes.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{
			gomath.Min(a.Min.X(), b.Min.X()),
			gomath.Min(a.Min.Y(), b.Min.Y()),
			gomath.Min(a.Min.Z(), b.Min.Z()),
		},
		Max: mgl64.Vec3{
			gomath.Max(a.Max.X(), b.Max.X()),
			gomath.Max(a.Max.Y(), b.Max.Y()),
			gomath.Max(a.Max.Z(), b.Max.Z()),
		},
	}
}

// Center returns the center point of the box.
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the longest axis.
func (a AABB) LongestAxis() int {
	size := a.Size()
	axis := 0
	if size.Y() > size.X() {
		axis = 1
	}
	if size.Z() > size[axis] {
		axis = 2
	}
	return axis
}

// Corners returns the 8 corner points of the box.
func (a AABB) Corners() [8]mgl64.Vec3 {
	return [8]mgl64.Vec3{
		{a.Min.X(), a.Min.Y(), a.Min.Z()},
		{a.Max.X(), a.Min.Y(), a.Min.Z()},
		{a.Min.X(), a.Max.Y(), a.Min.Z()},
		{a.Max.X(), a.Max.Y(), a.Min.Z()},
		{a.Min.X(), a.Min.Y(), a.Max.Z()},
		{a.Max.X(), a.Min.Y(), a.Max.Z()},
		{a.Min.X(), a.Max.Y(), a.Max.Z()},
		{a.Max.X(), a.Max.Y(), a.Max.Z()},
	}
}

// Intersects performs a slab test of the ray against the box.
// It returns the entry distance (or the exit distance when the ray starts
// inside the box) and whether an intersection occurred within [tMin, tMax].
func (a AABB) Intersects(ray Ray, tMin, tMax float64) (float64, bool) {
	lo := tMin
	hi := tMax

	for i := 0; i < 3; i++ {
		if ray.Direction[i] != 0 {
			t1 := (a.Min[i] - ray.Origin[i]) / ray.Direction[i]
			t2 := (a.Max[i] - ray.Origin[i]) / ray.Direction[i]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > lo {
				lo = t1
			}
			if t2 < hi {
				hi = t2
			}
		} else if ray.Origin[i] < a.Min[i] || ray.Origin[i] > a.Max[i] {
			return 0, false
		}
	}

	if hi < lo {
		return 0, false
	}
	if lo <= tMin {
		// Ray starts inside the box
		return hi, true
	}
	return lo, true
}
