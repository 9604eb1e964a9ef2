package pack

import "github.com/arl/go-nest/geom"

// Transform is a rigid motion: rotate about the part's canonical-pose
// reference vertex, then translate. It mirrors spec.md §6's output
// contract, "translate(tx,ty) rotate(r,px,py)".
type Transform struct {
	Translate geom.Point
	RotateRad float64
	// RotationIndex identifies which of the driver's discrete rotations
	// this is, for NFP cache keys and for the tie-break rule in spec.md
	// §4.E step 2 ("then the smallest rotation index").
	RotationIndex int
}

// Placement is the triple (polygon_id, translation, rotation) spec.md §3
// defines, plus the sheet it was placed on.
type Placement struct {
	PolygonID  int
	SheetIndex int
	Transform  Transform
}

// Apply returns part transformed into its placed pose.
func (t Transform) Apply(part geom.PolygonWithHoles) geom.PolygonWithHoles {
	rotated := part.RotatedAbout(part.RefPoint(), t.RotateRad)
	ref := rotated.RefPoint()
	return rotated.Translate(geom.Point{X: t.Translate.X - ref.X, Y: t.Translate.Y - ref.Y})
}

// Result is the outcome of one Pack call.
type Result struct {
	Placements []Placement
	// FailedIDs lists polygon ids that could not be placed (spec.md §7
	// kind 3), excluding ids silently dropped at ingest time (kind 2),
	// which never reach Pack at all.
	FailedIDs []int
	Status    Status
}
