package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/propsnap/pkg/conform"
	"github.com/Faultbox/propsnap/pkg/geom"
)

// rayEpsilon keeps intersection tests away from t=0 so a ray starting exactly
// on a surface does not re-hit it.
const rayEpsilon = 1e-9

// Scene holds objects and answers nearest-hit ray queries against them.
// Objects move between queries (the conformer repositions them mid-batch),
// so queries walk the live object list rather than a prebuilt hierarchy;
// per-mesh BVHs in local space stay valid regardless.
type Scene struct {
	objects []*Object
	nextID  conform.ObjectID
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{nextID: 1}
}

// Add places the object in the scene and assigns its ID.
func (s *Scene) Add(obj *Object) *Object {
	obj.id = s.nextID
	s.nextID++
	s.objects = append(s.objects, obj)
	return obj
}

// Objects returns all objects in insertion order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Find returns the object with the given name, or nil.
func (s *Scene) Find(name string) *Object {
	for _, obj := range s.objects {
		if obj.name == name {
			return obj
		}
	}
	return nil
}

// Meshes returns all mesh objects, the conformer's default working set.
func (s *Scene) Meshes() []*Object {
	var out []*Object
	for _, obj := range s.objects {
		if obj.kind == conform.KindMesh {
			out = append(out, obj)
		}
	}
	return out
}

// RayCast finds the nearest surface along dir within maxDist of origin,
// reporting which object was struck. Implements conform.Caster.
func (s *Scene) RayCast(origin, dir mgl64.Vec3, maxDist float64) (conform.Hit, bool) {
	ray := geom.NewRay(origin, dir)

	var closest *geom.HitRecord
	var closestObj *Object
	closestT := maxDist

	for _, obj := range s.objects {
		if rec, ok := obj.hitWorld(ray, rayEpsilon, closestT); ok {
			closest = rec
			closestObj = obj
			closestT = rec.T
		}
	}

	if closest == nil {
		return conform.Hit{}, false
	}

	// The conformer wants the surface's outward normal regardless of which
	// side the probe came from, so undo the toward-the-ray flip.
	normal := closest.Normal
	if !closest.FrontFace {
		normal = normal.Mul(-1)
	}
	return conform.Hit{
		Point:  closest.Point,
		Normal: normal,
		Object: closestObj.id,
	}, true
}
