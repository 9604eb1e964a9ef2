package geom

// PolygonWithHoles is one outer ring plus zero or more inner (hole) rings.
// By convention the outer ring is CCW and holes are CW (spec.md §3); the
// ingest package is responsible for establishing this, and downstream
// code (offset, nfp) may rely on it.
type PolygonWithHoles struct {
	// ID is the stable integer identity assigned at ingest time, used as
	// half of the NFP cache fingerprint (spec.md §3, §4.D).
	ID int
	Outer Ring
	Holes []Ring
}

// NewPolygon returns a PolygonWithHoles with outer forced to CCW and each
// hole forced to CW.
func NewPolygon(id int, outer Ring, holes []Ring) PolygonWithHoles {
	p := PolygonWithHoles{
		ID:    id,
		Outer: outer.EnsureOrientation(CCW),
		Holes: make([]Ring, len(holes)),
	}
	for i, h := range holes {
		p.Holes[i] = h.EnsureOrientation(CW)
	}
	return p
}

// Bounds returns the polygon's axis-aligned bounding box (of its outer
// ring only; holes never extend past the outer boundary per spec.md §3
// invariant (i)).
func (p PolygonWithHoles) Bounds() Rect {
	return p.Outer.Bounds()
}

// Area returns the outer ring's area minus the area of its holes.
func (p PolygonWithHoles) Area() float64 {
	area := p.Outer.Area()
	for _, h := range p.Holes {
		area -= h.Area()
	}
	return area
}

// ContainsPoint reports whether p lies in the solid region of the
// polygon: inside the outer ring and outside every hole.
func (p PolygonWithHoles) ContainsPoint(pt Point, eps float64) bool {
	if !p.Outer.ContainsPoint(pt, eps) {
		return false
	}
	for _, h := range p.Holes {
		if h.ContainsPoint(pt, eps) && !onBoundary(h, pt, eps) {
			return false
		}
	}
	return true
}

// Translate returns a copy of p with every ring shifted by d.
func (p PolygonWithHoles) Translate(d Point) PolygonWithHoles {
	out := PolygonWithHoles{ID: p.ID, Outer: p.Outer.Translate(d)}
	out.Holes = make([]Ring, len(p.Holes))
	for i, h := range p.Holes {
		out.Holes[i] = h.Translate(d)
	}
	return out
}

// RotatedAbout returns a copy of p with every ring rotated by angle
// radians about origin.
func (p PolygonWithHoles) RotatedAbout(origin Point, angle float64) PolygonWithHoles {
	out := PolygonWithHoles{ID: p.ID, Outer: p.Outer.RotatedAbout(origin, angle)}
	out.Holes = make([]Ring, len(p.Holes))
	for i, h := range p.Holes {
		out.Holes[i] = h.RotatedAbout(origin, angle)
	}
	return out
}

// RefPoint returns the polygon's reference point: the first vertex of its
// outer boundary, per spec.md §3's Placement definition.
func (p PolygonWithHoles) RefPoint() Point {
	return p.Outer.At(0)
}

// Valid checks the PolygonWithHoles invariants from spec.md §3 that are
// cheap to verify: a non-degenerate outer ring, each hole non-degenerate
// and contained in the outer ring's bounding box, holes pairwise disjoint
// by bounding box. It does not perform a full topological self-
// intersection test; that is covered by Ring.IsSimple where it matters
// (NFP kernel post-conditions).
func (p PolygonWithHoles) Valid() bool {
	if len(p.Outer.Points) < 3 {
		return false
	}
	ob := p.Outer.Bounds()
	for i, h := range p.Holes {
		if len(h.Points) < 3 {
			return false
		}
		if !ob.ContainsRect(h.Bounds()) {
			return false
		}
		for j := i + 1; j < len(p.Holes); j++ {
			if h.Bounds().Intersects(p.Holes[j].Bounds()) {
				return false
			}
		}
	}
	return true
}
