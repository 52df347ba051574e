package conform

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// scriptedCaster replays a fixed sequence of ray query responses and records
// the queries it received.
type scriptedCaster struct {
	responses []scriptedResponse
	calls     []mgl64.Vec3 // origins of received queries
}

type scriptedResponse struct {
	hit Hit
	ok  bool
}

func (c *scriptedCaster) RayCast(origin, dir mgl64.Vec3, maxDist float64) (Hit, bool) {
	c.calls = append(c.calls, origin)
	if len(c.responses) == 0 {
		return Hit{}, false
	}
	r := c.responses[0]
	c.responses = c.responses[1:]
	return r.hit, r.ok
}

func TestCastSurfaceRay_OriginBackedOff(t *testing.T) {
	caster := &scriptedCaster{}
	pos := mgl64.Vec3{1, 2, 3}
	dir := mgl64.Vec3{0, 0, -1}

	_, _, err := CastSurfaceRay(caster, 1, pos, dir, 100, DefaultMaxRetries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(caster.calls) != 1 {
		t.Fatalf("expected 1 query, got %d", len(caster.calls))
	}

	// The ray starts maxDist behind the object, opposite the direction.
	want := mgl64.Vec3{1, 2, 103}
	if !caster.calls[0].ApproxEqual(want) {
		t.Errorf("expected query origin %v, got %v", want, caster.calls[0])
	}
}

func TestCastSurfaceRay_SelfHitSuppressed(t *testing.T) {
	// First intersection is the casting object itself; the surface of a
	// second object lies 5 units further along the ray. The self-hit must be
	// skipped, not returned.
	const self ObjectID = 1
	const other ObjectID = 2
	dir := mgl64.Vec3{0, 0, -1}

	selfHit := Hit{Point: mgl64.Vec3{0, 0, 5}, Normal: mgl64.Vec3{0, 0, 1}, Object: self}
	groundHit := Hit{Point: mgl64.Vec3{0, 0, 0}, Normal: mgl64.Vec3{0, 0, 1}, Object: other}

	caster := &scriptedCaster{responses: []scriptedResponse{
		{hit: selfHit, ok: true},
		{hit: groundHit, ok: true},
	}}

	hit, ok, err := CastSurfaceRay(caster, self, mgl64.Vec3{0, 0, 5}, dir, 1000, DefaultMaxRetries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Object != other {
		t.Errorf("expected hit on object %d, got %d", other, hit.Object)
	}
	if !hit.Point.ApproxEqual(groundHit.Point) {
		t.Errorf("expected hit point %v, got %v", groundHit.Point, hit.Point)
	}

	// The retry must restart just past the self-hit point.
	if len(caster.calls) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(caster.calls))
	}
	advance := caster.calls[1].Sub(selfHit.Point)
	if math.Abs(advance.Len()-selfHitEpsilon) > 1e-12 {
		t.Errorf("expected retry origin %v past the self-hit, got advance %v", selfHitEpsilon, advance.Len())
	}
	if advance.Dot(dir) <= 0 {
		t.Error("retry origin did not advance along the cast direction")
	}
}

func TestCastSurfaceRay_NoHit(t *testing.T) {
	caster := &scriptedCaster{}

	hit, ok, err := CastSurfaceRay(caster, 1, mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 1000, DefaultMaxRetries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("expected no hit, got %+v", hit)
	}
}

func TestCastSurfaceRay_RetryCeiling(t *testing.T) {
	// A caster that forever reports the casting object must not hang; the
	// loop gives up after maxRetries with a distinct outcome.
	const self ObjectID = 7
	const retries = 5

	responses := make([]scriptedResponse, retries+10)
	for i := range responses {
		responses[i] = scriptedResponse{
			hit: Hit{Point: mgl64.Vec3{0, 0, float64(-i)}, Normal: mgl64.Vec3{0, 0, 1}, Object: self},
			ok:  true,
		}
	}
	caster := &scriptedCaster{responses: responses}

	_, ok, err := CastSurfaceRay(caster, self, mgl64.Vec3{}, mgl64.Vec3{0, 0, -1}, 1000, retries)
	if ok {
		t.Error("expected no hit on retry exhaustion")
	}
	if !errors.Is(err, ErrAmbiguousGeometry) {
		t.Errorf("expected ErrAmbiguousGeometry, got %v", err)
	}
	if len(caster.calls) != retries {
		t.Errorf("expected exactly %d queries, got %d", retries, len(caster.calls))
	}
}
