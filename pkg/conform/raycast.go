package conform

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrAmbiguousGeometry is returned when the self-hit suppression loop keeps
// striking the casting object past the retry ceiling. This generally means
// duplicate geometry stacked at the same location.
var ErrAmbiguousGeometry = errors.New("conform: self-hit suppressed too many times")

// selfHitEpsilon is how far the ray origin advances past a self-hit before
// re-querying. Small enough not to skip thin nearby surfaces, large enough to
// guarantee forward progress over floating-point noise.
const selfHitEpsilon = 1e-4

// CastSurfaceRay probes for the nearest surface along dir, ignoring hits on
// the object identified by self.
//
// The ray starts maxDist behind the object's position (opposite dir) and
// traverses twice maxDist, so the probe sweeps across the object's own extent
// before searching beyond it. Hits on the casting object advance the origin
// by a small epsilon and re-query, at most maxRetries times.
//
// Returns the hit and true on success; a zero Hit and false when nothing was
// struck; ErrAmbiguousGeometry when the retry ceiling was exhausted.
func CastSurfaceRay(caster Caster, self ObjectID, position mgl64.Vec3, dir mgl64.Vec3, maxDist float64, maxRetries int) (Hit, bool, error) {
	start := position.Sub(dir.Mul(maxDist))
	castDist := maxDist * 2

	for attempt := 0; attempt < maxRetries; attempt++ {
		hit, ok := caster.RayCast(start, dir, castDist)
		if !ok {
			return Hit{}, false, nil
		}
		if hit.Object != self {
			return hit, true, nil
		}
		// Struck our own geometry; nudge past it and try again.
		start = hit.Point.Add(dir.Mul(selfHitEpsilon))
	}
	return Hit{}, false, ErrAmbiguousGeometry
}
