package geom

import "math"

// Orientation classifies a ring's winding direction.
type Orientation int

const (
	// CCW is the outer-boundary convention: area computes positive.
	CCW Orientation = iota
	// CW is the hole convention: area computes negative.
	CW
)

// Ring is a closed polyline: an ordered sequence of at least three
// distinct points, with the closing edge implicit (Points[0] is not
// duplicated at the end).
type Ring struct {
	Points []Point
}

// NewRing builds a Ring from points, validating the minimum vertex count.
func NewRing(points []Point) (Ring, bool) {
	if len(points) < 3 {
		return Ring{}, false
	}
	return Ring{Points: append([]Point(nil), points...)}, true
}

// Len returns the number of vertices.
func (r Ring) Len() int { return len(r.Points) }

// At returns the i-th vertex, wrapping modulo Len for convenience when
// walking edges.
func (r Ring) At(i int) Point {
	n := len(r.Points)
	return r.Points[((i%n)+n)%n]
}

// Edges calls fn for every (a, b) edge of the ring, including the implicit
// closing edge from the last point back to the first.
func (r Ring) Edges(fn func(a, b Point)) {
	n := len(r.Points)
	for i := 0; i < n; i++ {
		fn(r.Points[i], r.Points[(i+1)%n])
	}
}

// SignedArea returns the standard shoelace signed area. Positive under
// the CCW convention, negative under CW.
func (r Ring) SignedArea() float64 {
	var sum float64
	r.Edges(func(a, b Point) {
		sum += a.X*b.Y - b.X*a.Y
	})
	return sum / 2
}

// Area returns the unsigned area enclosed by the ring.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// Orientation reports the ring's winding direction.
func (r Ring) Orientation() Orientation {
	if r.SignedArea() >= 0 {
		return CCW
	}
	return CW
}

// Reversed returns a copy of the ring with vertex order reversed, flipping
// its orientation.
func (r Ring) Reversed() Ring {
	out := make([]Point, len(r.Points))
	for i, p := range r.Points {
		out[len(out)-1-i] = p
	}
	return Ring{Points: out}
}

// EnsureOrientation returns r, reversed if necessary, so that its
// orientation matches want.
func (r Ring) EnsureOrientation(want Orientation) Ring {
	if r.Orientation() == want {
		return r
	}
	return r.Reversed()
}

// Bounds returns the ring's axis-aligned bounding box.
func (r Ring) Bounds() Rect {
	if len(r.Points) == 0 {
		return Rect{}
	}
	rect := Rect{Min: r.Points[0], Max: r.Points[0]}
	for _, p := range r.Points[1:] {
		rect.Min.X = math.Min(rect.Min.X, p.X)
		rect.Min.Y = math.Min(rect.Min.Y, p.Y)
		rect.Max.X = math.Max(rect.Max.X, p.X)
		rect.Max.Y = math.Max(rect.Max.Y, p.Y)
	}
	return rect
}

// Translate returns a copy of r with every vertex shifted by d.
func (r Ring) Translate(d Point) Ring {
	out := make([]Point, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Add(d)
	}
	return Ring{Points: out}
}

// RotatedAbout returns a copy of r rotated by angle radians about origin.
func (r Ring) RotatedAbout(origin Point, angle float64) Ring {
	out := make([]Point, len(r.Points))
	for i, p := range r.Points {
		out[i] = origin.Add(p.Sub(origin).Rotate(angle))
	}
	return Ring{Points: out}
}

// ContainsPoint reports whether p lies inside (or, within eps, on the
// boundary of) the ring, using the winding-number test. Winding number is
// exact for simple polygons regardless of orientation, unlike the
// even-odd crossing count, and handles the CW holes this package also
// represents.
func (r Ring) ContainsPoint(p Point, eps float64) bool {
	if onBoundary(r, p, eps) {
		return true
	}
	wn := 0
	n := len(r.Points)
	for i := 0; i < n; i++ {
		a := r.Points[i]
		b := r.Points[(i+1)%n]
		if a.Y <= p.Y {
			if b.Y > p.Y && isLeft(a, b, p) > 0 {
				wn++
			}
		} else {
			if b.Y <= p.Y && isLeft(a, b, p) < 0 {
				wn--
			}
		}
	}
	return wn != 0
}

// isLeft returns >0 if p is left of the line a->b, <0 if right, 0 if on it.
func isLeft(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

func onBoundary(r Ring, p Point, eps float64) bool {
	found := false
	r.Edges(func(a, b Point) {
		if found {
			return
		}
		if distToSegment(p, a, b) <= eps {
			found = true
		}
	})
	return found
}

func distToSegment(p, a, b Point) float64 {
	vx, vy := b.X-a.X, b.Y-a.Y
	wx, wy := p.X-a.X, p.Y-a.Y
	segLenSq := vx*vx + vy*vy
	if segLenSq == 0 {
		return p.Dist(a)
	}
	t := (wx*vx + wy*vy) / segLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := Point{a.X + t*vx, a.Y + t*vy}
	return p.Dist(proj)
}

// IsSimple reports whether no two non-adjacent edges of the ring cross.
// Used as a post-condition check on kernel output (spec error kind 4).
func (r Ring) IsSimple() bool {
	n := len(r.Points)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := r.Points[i], r.Points[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i {
				continue
			}
			b1, b2 := r.Points[j], r.Points[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := isLeft(p3, p4, p1)
	d2 := isLeft(p3, p4, p2)
	d3 := isLeft(p1, p2, p3)
	d4 := isLeft(p1, p2, p4)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}
