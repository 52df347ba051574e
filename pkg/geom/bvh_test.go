package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)
	if _, ok := bvh.Hit(NewRay(mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}), 0, 100); ok {
		t.Error("expected miss on empty BVH")
	}
}

func TestBVH_NearestOfStackedShapes(t *testing.T) {
	// Three horizontal triangles stacked along Z; the ray must report the
	// topmost one, not whichever the build order favors.
	zs := []float64{0, 2, 4}
	var shapes []Shape
	for _, z := range zs {
		shapes = append(shapes, NewTriangle(
			mgl64.Vec3{-5, -5, z},
			mgl64.Vec3{5, -5, z},
			mgl64.Vec3{0, 5, z},
		))
	}

	bvh := NewBVH(shapes)
	rec, ok := bvh.Hit(NewRay(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1}), 1e-9, 100)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(rec.T-6) > 1e-9 {
		t.Errorf("expected nearest hit at t=6 (z=4), got t=%v", rec.T)
	}
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	// The hierarchy must agree with a brute-force scan over many random
	// triangles and rays.
	rng := rand.New(rand.NewSource(42))
	randVec := func(scale float64) mgl64.Vec3 {
		return mgl64.Vec3{
			(rng.Float64() - 0.5) * scale,
			(rng.Float64() - 0.5) * scale,
			(rng.Float64() - 0.5) * scale,
		}
	}

	var shapes []Shape
	for i := 0; i < 200; i++ {
		center := randVec(20)
		shapes = append(shapes, NewTriangle(
			center.Add(randVec(2)),
			center.Add(randVec(2)),
			center.Add(randVec(2)),
		))
	}
	bvh := NewBVH(shapes)

	for i := 0; i < 100; i++ {
		ray := NewRay(randVec(30), randVec(2).Normalize())

		var want *HitRecord
		wantT := 1000.0
		for _, s := range shapes {
			if rec, ok := s.Hit(ray, 1e-9, wantT); ok {
				want = rec
				wantT = rec.T
			}
		}

		got, ok := bvh.Hit(ray, 1e-9, 1000)
		if (want != nil) != ok {
			t.Fatalf("ray %d: BVH hit=%v, linear scan hit=%v", i, ok, want != nil)
		}
		if want != nil && math.Abs(got.T-want.T) > 1e-9 {
			t.Errorf("ray %d: BVH t=%v, linear scan t=%v", i, got.T, want.T)
		}
	}
}
