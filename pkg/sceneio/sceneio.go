// Package sceneio reads and writes YAML scene descriptions, so the conform
// tool can load a scene, rework it and write the result back.
package sceneio

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/propsnap/pkg/conform"
	"github.com/Faultbox/propsnap/pkg/geom"
	"github.com/Faultbox/propsnap/pkg/scene"
)

// File is the top-level YAML document.
type File struct {
	Objects []ObjectSpec `yaml:"objects"`
}

// ObjectSpec describes one object. Exactly one of Box, Plane or Triangles
// should be set for mesh objects.
type ObjectSpec struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"` // mesh (default), empty, light, camera
	Position [3]float64 `yaml:"position"`
	Rotation []float64  `yaml:"rotation,omitempty"` // quaternion [w, x, y, z], identity if omitted
	Scale    float64    `yaml:"scale,omitempty"`    // uniform, 1 if omitted

	Box       *BoxSpec     `yaml:"box,omitempty"`
	Plane     *PlaneSpec   `yaml:"plane,omitempty"`
	Triangles [][9]float64 `yaml:"triangles,omitempty"` // v0.xyz, v1.xyz, v2.xyz per row
}

// BoxSpec is an axis-aligned box in local space.
type BoxSpec struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

// PlaneSpec is an infinite plane in local space.
type PlaneSpec struct {
	Point  [3]float64 `yaml:"point"`
	Normal [3]float64 `yaml:"normal"`
}

// Load reads a YAML scene file and builds the scene.
func Load(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a scene from YAML bytes.
func Parse(data []byte) (*scene.Scene, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return file.Build()
}

func buildObject(spec ObjectSpec) (*scene.Object, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("missing name")
	}

	kind, err := parseKind(spec.Kind)
	if err != nil {
		return nil, err
	}

	var shape geom.Shape
	switch {
	case spec.Box != nil:
		shape = geom.NewBoxMesh(vec3(spec.Box.Min), vec3(spec.Box.Max))
	case spec.Plane != nil:
		shape = geom.NewPlane(vec3(spec.Plane.Point), vec3(spec.Plane.Normal))
	case len(spec.Triangles) > 0:
		tris := make([]*geom.Triangle, len(spec.Triangles))
		for i, row := range spec.Triangles {
			tris[i] = geom.NewTriangle(
				mgl64.Vec3{row[0], row[1], row[2]},
				mgl64.Vec3{row[3], row[4], row[5]},
				mgl64.Vec3{row[6], row[7], row[8]},
			)
		}
		shape = geom.NewTriangleMesh(tris)
	default:
		if kind == conform.KindMesh {
			return nil, fmt.Errorf("mesh object needs box, plane or triangles")
		}
	}

	obj := scene.NewObject(spec.Name, kind, shape)
	obj.SetPosition(vec3(spec.Position))
	if len(spec.Rotation) > 0 {
		if len(spec.Rotation) != 4 {
			return nil, fmt.Errorf("rotation must be a quaternion [w, x, y, z]")
		}
		q := mgl64.Quat{
			W: spec.Rotation[0],
			V: mgl64.Vec3{spec.Rotation[1], spec.Rotation[2], spec.Rotation[3]},
		}
		if q.Len() == 0 {
			return nil, fmt.Errorf("rotation quaternion has zero length")
		}
		obj.SetRotation(q)
	}
	if spec.Scale != 0 {
		if spec.Scale < 0 {
			return nil, fmt.Errorf("scale must be positive, got %v", spec.Scale)
		}
		obj.SetScale(spec.Scale)
	}
	return obj, nil
}

func parseKind(s string) (conform.Kind, error) {
	switch s {
	case "", "mesh":
		return conform.KindMesh, nil
	case "empty":
		return conform.KindEmpty, nil
	case "light":
		return conform.KindLight, nil
	case "camera":
		return conform.KindCamera, nil
	default:
		return 0, fmt.Errorf("unknown object kind %q", s)
	}
}

func vec3(a [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{a[0], a[1], a[2]}
}
