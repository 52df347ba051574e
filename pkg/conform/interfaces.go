// Package conform snaps objects onto the nearest surface along a chosen
// axis, optionally aligning the object's local up axis to the surface normal.
// The package never touches scene storage directly; it works through the
// Caster and Object interfaces supplied by the hosting environment.
package conform

import "github.com/go-gl/mathgl/mgl64"

// ObjectID identifies an object within a scene. IDs are assigned by the host
// and are only compared for equality, to detect self-hits.
type ObjectID uint64

// Kind classifies an object. Only mesh objects are conformed; everything
// else is skipped.
type Kind int

const (
	KindMesh Kind = iota
	KindEmpty
	KindLight
	KindCamera
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindEmpty:
		return "empty"
	case KindLight:
		return "light"
	case KindCamera:
		return "camera"
	default:
		return "unknown"
	}
}

// Hit is the result of a scene ray query.
type Hit struct {
	Point  mgl64.Vec3 // World-space intersection point
	Normal mgl64.Vec3 // World-space unit surface normal at the intersection
	Object ObjectID   // The object that was struck
}

// Caster is the scene's ray intersection query. Implementations must report
// which object each hit belongs to so the conformer can suppress self-hits.
type Caster interface {
	// RayCast finds the nearest surface along dir within maxDist of origin.
	RayCast(origin, dir mgl64.Vec3, maxDist float64) (Hit, bool)
}

// Object is the conformer's view of a scene object: read transform and
// bounding geometry, write position and rotation. Implementations own the
// underlying storage.
type Object interface {
	ID() ObjectID
	Name() string
	Kind() Kind

	Position() mgl64.Vec3
	Rotation() mgl64.Quat
	// WorldTransform returns the full local-to-world matrix, including any
	// scale the host applies.
	WorldTransform() mgl64.Mat4
	// BoundCorners returns the 8 corners of the local-space bounding box.
	BoundCorners() [8]mgl64.Vec3

	SetPosition(mgl64.Vec3)
	SetRotation(mgl64.Quat)
}
