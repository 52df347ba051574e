package conform

// Status classifies the outcome of conforming one object.
type Status int

const (
	// StatusConformed means the object was moved onto a surface.
	StatusConformed Status = iota
	// StatusNoHit means no surface was found within the probe range; the
	// object was left untouched.
	StatusNoHit
	// StatusAmbiguous means self-hit suppression exhausted its retry budget;
	// the object was left untouched.
	StatusAmbiguous
	// StatusSkipped means the object is not a mesh and was not considered.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusConformed:
		return "conformed"
	case StatusNoHit:
		return "no hit"
	case StatusAmbiguous:
		return "ambiguous geometry"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result records the outcome for a single object.
type Result struct {
	Object string // object name
	Status Status
	Hit    Hit // valid only when Status == StatusConformed
}

// Report collects per-object results for one conform invocation. No result
// is fatal; the batch always runs to completion.
type Report struct {
	Results []Result
}

// Conformed returns how many objects were moved onto a surface.
func (r *Report) Conformed() int {
	return r.count(StatusConformed)
}

// Missed returns how many objects found no surface.
func (r *Report) Missed() int {
	return r.count(StatusNoHit)
}

// Skipped returns how many objects were not meshes.
func (r *Report) Skipped() int {
	return r.count(StatusSkipped)
}

func (r *Report) count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}
