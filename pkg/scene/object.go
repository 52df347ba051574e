// Package scene provides a minimal scene graph that backs the conformer's
// collaborator interfaces: objects with rigid transforms over local shapes,
// and a nearest-hit ray query that identifies the struck object.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/propsnap/pkg/conform"
	"github.com/Faultbox/propsnap/pkg/geom"
)

// Object is an entity in the scene: a local-space shape placed in the world
// by position, rotation and uniform scale.
type Object struct {
	id       conform.ObjectID
	name     string
	kind     conform.Kind
	position mgl64.Vec3
	rotation mgl64.Quat
	scale    float64
	shape    geom.Shape
}

// NewObject creates a mesh object at the origin with identity rotation and
// unit scale. The shape may be nil for non-mesh kinds.
func NewObject(name string, kind conform.Kind, shape geom.Shape) *Object {
	return &Object{
		name:     name,
		kind:     kind,
		rotation: mgl64.QuatIdent(),
		scale:    1,
		shape:    shape,
	}
}

// ID returns the scene-assigned identifier. Zero until the object is added
// to a scene.
func (o *Object) ID() conform.ObjectID { return o.id }

// Name returns the object's name.
func (o *Object) Name() string { return o.name }

// Kind returns the object's kind.
func (o *Object) Kind() conform.Kind { return o.kind }

// Position returns the world-space position.
func (o *Object) Position() mgl64.Vec3 { return o.position }

// Rotation returns the world-space rotation.
func (o *Object) Rotation() mgl64.Quat { return o.rotation }

// Scale returns the uniform scale factor.
func (o *Object) Scale() float64 { return o.scale }

// Shape returns the local-space shape, or nil for shapeless objects.
func (o *Object) Shape() geom.Shape { return o.shape }

// SetPosition sets the world-space position.
func (o *Object) SetPosition(p mgl64.Vec3) { o.position = p }

// SetRotation sets the world-space rotation. The quaternion is normalized.
func (o *Object) SetRotation(q mgl64.Quat) { o.rotation = q.Normalize() }

// SetScale sets the uniform scale. Non-positive values are ignored.
func (o *Object) SetScale(s float64) {
	if s > 0 {
		o.scale = s
	}
}

// WorldTransform returns the local-to-world matrix (translate * rotate * scale).
func (o *Object) WorldTransform() mgl64.Mat4 {
	t := mgl64.Translate3D(o.position.X(), o.position.Y(), o.position.Z())
	r := o.rotation.Mat4()
	s := mgl64.Scale3D(o.scale, o.scale, o.scale)
	return t.Mul4(r).Mul4(s)
}

// BoundCorners returns the 8 corners of the local-space bounding box.
// Shapeless objects report a degenerate box at the origin.
func (o *Object) BoundCorners() [8]mgl64.Vec3 {
	if o.shape == nil {
		return [8]mgl64.Vec3{}
	}
	return o.shape.Bounds().Corners()
}

// hitWorld casts a world-space ray against the object's shape. The ray is
// taken into local space, so t values scale by the object's uniform scale;
// the returned record is converted back to world space with world-distance t.
func (o *Object) hitWorld(ray geom.Ray, tMin, tMax float64) (*geom.HitRecord, bool) {
	if o.shape == nil || o.scale <= 0 {
		return nil, false
	}

	inv := o.rotation.Inverse()
	localOrigin := inv.Rotate(ray.Origin.Sub(o.position)).Mul(1 / o.scale)
	localDir := inv.Rotate(ray.Direction)
	localRay := geom.Ray{Origin: localOrigin, Direction: localDir}

	rec, ok := o.shape.Hit(localRay, tMin/o.scale, tMax/o.scale)
	if !ok {
		return nil, false
	}

	worldT := rec.T * o.scale
	return &geom.HitRecord{
		Point:     ray.At(worldT),
		Normal:    o.rotation.Rotate(rec.Normal),
		T:         worldT,
		FrontFace: rec.FrontFace,
	}, true
}
