package conform

import "github.com/go-gl/mathgl/mgl64"

// ExtremeOffset returns the signed distance along normal from the object's
// origin to its most extreme bounding corner in the direction opposite the
// normal: the minimum over the 8 world-space corners of
// dot(corner - origin, normal).
//
// For an object resting above a surface whose normal points back at it the
// result is negative. The sign is part of the contract; callers reposition
// with position = hitPoint - normal * offset.
func ExtremeOffset(transform mgl64.Mat4, origin mgl64.Vec3, corners [8]mgl64.Vec3, normal mgl64.Vec3) float64 {
	min := 0.0
	for i, c := range corners {
		world := mgl64.TransformCoordinate(c, transform)
		d := world.Sub(origin).Dot(normal)
		if i == 0 || d < min {
			min = d
		}
	}
	return min
}
