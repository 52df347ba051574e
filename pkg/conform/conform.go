package conform

import (
	"errors"

	"go.uber.org/zap"
)

// Conformer snaps objects onto surfaces found by a scene's ray query.
type Conformer struct {
	caster Caster
	log    *zap.Logger
}

// New creates a Conformer over the given scene query. A nil logger disables
// logging.
func New(caster Caster, log *zap.Logger) *Conformer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Conformer{caster: caster, log: log}
}

// Conform processes each object in order: probe for a surface along the
// configured direction, optionally align the object's local Z axis to the
// hit normal, then translate the object so its extreme bounding corner rests
// exactly on the hit point.
//
// Objects are processed strictly sequentially; an object moved early in the
// batch is visible to the ray queries of later ones. Non-mesh objects are
// skipped, and objects with no surface in range are left untouched. Neither
// aborts the batch.
func (c *Conformer) Conform(objects []Object, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dir := opts.Direction.Vec()
	report := &Report{Results: make([]Result, 0, len(objects))}

	for _, obj := range objects {
		if obj.Kind() != KindMesh {
			report.Results = append(report.Results, Result{Object: obj.Name(), Status: StatusSkipped})
			continue
		}

		hit, ok, err := CastSurfaceRay(c.caster, obj.ID(), obj.Position(), dir, opts.MaxDistance, opts.MaxRetries)
		if err != nil {
			if !errors.Is(err, ErrAmbiguousGeometry) {
				return report, err
			}
			c.log.Warn("ambiguous geometry, object not moved",
				zap.String("object", obj.Name()),
				zap.Int("retries", opts.MaxRetries))
			report.Results = append(report.Results, Result{Object: obj.Name(), Status: StatusAmbiguous})
			continue
		}
		if !ok {
			c.log.Info("no surface hit",
				zap.String("object", obj.Name()),
				zap.Stringer("direction", opts.Direction))
			report.Results = append(report.Results, Result{Object: obj.Name(), Status: StatusNoHit})
			continue
		}

		if opts.AlignRotation {
			obj.SetRotation(TrackQuat(hit.Normal))
		}

		// Offset uses the post-alignment transform so the extreme corner is
		// measured in the object's final orientation.
		offset := ExtremeOffset(obj.WorldTransform(), obj.Position(), obj.BoundCorners(), hit.Normal)
		obj.SetPosition(hit.Point.Sub(hit.Normal.Mul(offset)))

		c.log.Debug("conformed",
			zap.String("object", obj.Name()),
			zap.Float64("offset", offset))
		report.Results = append(report.Results, Result{Object: obj.Name(), Status: StatusConformed, Hit: hit})
	}

	return report, nil
}
