package conform

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

// hintAxis fixes the roll about the target normal; the world Y axis by
// convention.
var hintAxis = mgl64.Vec3{0, 1, 0}

// TrackQuat returns the rotation that points the local Z axis along normal,
// using the world Y axis to resolve the roll about the normal.
//
// When the normal is parallel to the hint axis the roll is underdetermined.
// The fallback picks a stable perpendicular derived from the normal's
// smallest component, so the result is deterministic for any input.
func TrackQuat(normal mgl64.Vec3) mgl64.Quat {
	z := normal.Normalize()

	x := hintAxis.Cross(z)
	if x.Len() < 1e-8 {
		x = stablePerpendicular(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	// Basis vectors become the columns of the rotation matrix.
	m := mgl64.Mat4FromCols(
		x.Vec4(0),
		y.Vec4(0),
		z.Vec4(0),
		mgl64.Vec4{0, 0, 0, 1},
	)
	return mgl64.Mat4ToQuat(m)
}

// stablePerpendicular returns a unit vector perpendicular to v, chosen by
// crossing v with the world axis along v's smallest component.
func stablePerpendicular(v mgl64.Vec3) mgl64.Vec3 {
	smallest := 0
	for i := 1; i < 3; i++ {
		if gomath.Abs(v[i]) < gomath.Abs(v[smallest]) {
			smallest = i
		}
	}
	axis := mgl64.Vec3{}
	axis[smallest] = 1
	return axis.Cross(v).Normalize()
}
