// Package pack implements the first-fit-decreasing placement driver
// (spec.md §4.E): sheet/part/rotation trial, the bottom-left-fill cost
// rule, and sheet obstacle accumulation.
package pack

import "github.com/arl/go-nest/geom"

// Sheet is a rectangular area plus a set of forbidden regions (spec.md
// §3). As placement proceeds, placed parts are appended to Obstacles:
// their outer boundary becomes a stationary obstacle, and (per
// DESIGN.md's NFP-with-holes resolution) their own holes remain
// reachable free space for later parts.
type Sheet struct {
	Rect      geom.Rect
	Obstacles []geom.PolygonWithHoles
}

// NewSheet returns a Sheet with the given rectangle and initial
// forbidden regions (e.g. sheet holes parsed by ingest.ParseSheet).
func NewSheet(rect geom.Rect, holes []geom.PolygonWithHoles) *Sheet {
	return &Sheet{Rect: rect, Obstacles: append([]geom.PolygonWithHoles(nil), holes...)}
}

// rectRing returns the sheet rectangle as a CCW ring, the container used
// for IFP computation (spec.md §4.D).
func (s *Sheet) rectRing() geom.Ring {
	r := s.Rect
	ring, _ := geom.NewRing([]geom.Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	})
	return ring
}

// AddObstacle appends part, already transformed to its placed pose, to
// the sheet's forbidden set.
func (s *Sheet) AddObstacle(placed geom.PolygonWithHoles) {
	s.Obstacles = append(s.Obstacles, placed)
}
