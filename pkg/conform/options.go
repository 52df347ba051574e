package conform

import "fmt"

// Default option values.
const (
	DefaultMaxDistance = 1000.0
	DefaultMaxRetries  = 16
)

// Options configures a single conform invocation. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	// MaxDistance is the probe distance. The ray origin is backed off by
	// this much behind the object and the cast traverses twice this length,
	// so the probe sweeps across the object's own extent first.
	MaxDistance float64
	// Direction is the cast direction.
	Direction Direction
	// AlignRotation rotates the object so its local Z axis points along the
	// hit normal.
	AlignRotation bool
	// MaxRetries bounds the self-hit suppression loop. Overlapping duplicate
	// geometry can otherwise keep reporting the casting object forever.
	MaxRetries int
}

// DefaultOptions returns the standard settings: cast 1000 units downward, no
// rotation alignment.
func DefaultOptions() Options {
	return Options{
		MaxDistance: DefaultMaxDistance,
		Direction:   DirDown,
		MaxRetries:  DefaultMaxRetries,
	}
}

// Validate checks option values.
func (o Options) Validate() error {
	if o.MaxDistance < 0 {
		return fmt.Errorf("max distance must be >= 0, got %v", o.MaxDistance)
	}
	if o.MaxRetries < 1 {
		return fmt.Errorf("max retries must be >= 1, got %d", o.MaxRetries)
	}
	return nil
}
