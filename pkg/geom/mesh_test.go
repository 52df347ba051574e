package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTriangle_Hit(t *testing.T) {
	tri := NewTriangle(
		mgl64.Vec3{-1, -1, 0},
		mgl64.Vec3{1, -1, 0},
		mgl64.Vec3{0, 1, 0},
	)

	// Straight through the centroid
	ray := NewRay(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})
	rec, ok := tri.Hit(ray, 1e-9, 100)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.T-5) > 1e-9 {
		t.Errorf("expected t=5, got %v", rec.T)
	}
	if !rec.Normal.ApproxEqual(mgl64.Vec3{0, 0, 1}) {
		t.Errorf("expected normal +Z, got %v", rec.Normal)
	}

	// Outside the triangle but inside its bounding box
	ray = NewRay(mgl64.Vec3{0.9, 0.9, 5}, mgl64.Vec3{0, 0, -1})
	if _, ok := tri.Hit(ray, 1e-9, 100); ok {
		t.Error("expected miss outside the triangle")
	}

	// Edge-on ray
	ray = NewRay(mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{1, 0, 0})
	if _, ok := tri.Hit(ray, 1e-9, 100); ok {
		t.Error("expected miss for ray in the triangle plane")
	}
}

func TestBoxMesh_TriangleCount(t *testing.T) {
	mesh := NewBoxMesh(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	if mesh.TriangleCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", mesh.TriangleCount())
	}
}

func TestBoxMesh_HitFromEachSide(t *testing.T) {
	mesh := NewBoxMesh(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})

	cases := []struct {
		name       string
		origin     mgl64.Vec3
		dir        mgl64.Vec3
		wantNormal mgl64.Vec3
	}{
		{"above", mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, 1}},
		{"below", mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, -1}},
		{"east", mgl64.Vec3{5, 0, 0}, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{1, 0, 0}},
		{"west", mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{-1, 0, 0}},
		{"north", mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0}, mgl64.Vec3{0, 1, 0}},
		{"south", mgl64.Vec3{0, -5, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, -1, 0}},
	}

	for _, c := range cases {
		rec, ok := mesh.Hit(NewRay(c.origin, c.dir), 1e-9, 100)
		if !ok {
			t.Errorf("%s: expected hit", c.name)
			continue
		}
		if math.Abs(rec.T-4) > 1e-9 {
			t.Errorf("%s: expected t=4, got %v", c.name, rec.T)
		}
		if !rec.Normal.ApproxEqualThreshold(c.wantNormal, 1e-9) {
			t.Errorf("%s: expected normal %v, got %v", c.name, c.wantNormal, rec.Normal)
		}
		if !rec.FrontFace {
			t.Errorf("%s: expected front face hit", c.name)
		}
	}
}

func TestBoxMesh_HitFromInside(t *testing.T) {
	mesh := NewBoxMesh(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})

	rec, ok := mesh.Hit(NewRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -1}), 1e-9, 100)
	if !ok {
		t.Fatal("expected hit from inside the box")
	}
	if math.Abs(rec.T-1) > 1e-9 {
		t.Errorf("expected t=1, got %v", rec.T)
	}
	if rec.FrontFace {
		t.Error("expected back face hit from inside")
	}
	// Normal faces the ray, pointing back up into the box
	if !rec.Normal.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("expected flipped normal +Z, got %v", rec.Normal)
	}
}

func TestBoxMesh_Bounds(t *testing.T) {
	mesh := NewBoxMesh(mgl64.Vec3{-1, -2, -3}, mgl64.Vec3{1, 2, 3})
	bounds := mesh.Bounds()

	if !bounds.Min.ApproxEqualThreshold(mgl64.Vec3{-1, -2, -3}, 1e-6) ||
		!bounds.Max.ApproxEqualThreshold(mgl64.Vec3{1, 2, 3}, 1e-6) {
		t.Errorf("unexpected bounds [%v, %v]", bounds.Min, bounds.Max)
	}
}
