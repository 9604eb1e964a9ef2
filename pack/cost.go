package pack

import "github.com/arl/go-nest/geom"

// bestVertex picks the vertex among region's rings minimizing (y, x)
// lexicographically: spec.md §4.E's bottom-left-fill rule under y-down
// screen coordinates. ok is false if region has no vertices at all.
func bestVertex(region []geom.Ring) (geom.Point, bool) {
	var best geom.Point
	found := false
	for _, ring := range region {
		for _, p := range ring.Points {
			if !found || lessCost(p, best) {
				best = p
				found = true
			}
		}
	}
	return best, found
}

// lessCost reports whether a has strictly lower (y, x) cost than b.
func lessCost(a, b geom.Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
