package offset

import (
	"math"

	"github.com/arl/go-nest/geom"
)

// Simplify removes collinear and near-collinear vertices from r whose
// perpendicular deviation from the simplified boundary is at most
// tolerance, via the standard recursive Douglas-Peucker algorithm run
// around the closed ring. The Clipper2 port in the dependency pack
// exposes boolean and offset operations but not a Hausdorff-bounded
// simplifier with this exact tolerance contract, so this is implemented
// directly; Douglas-Peucker is a textbook, self-contained algorithm that
// doesn't warrant pulling in a separate library for one function.
//
// Per spec.md §4.B, the returned ring differs from r by at most tolerance
// in Hausdorff distance.
func Simplify(r geom.Ring, tolerance float64) geom.Ring {
	if r.Len() < 4 || tolerance <= 0 {
		return r
	}
	// Anchor the recursion at the point of maximum extent so the "closing
	// edge" split doesn't bias the simplification.
	start := farthestIndex(r.Points)
	rotated := rotate(r.Points, start)

	keep := make([]bool, len(rotated))
	keep[0] = true
	keep[len(rotated)-1] = true
	douglasPeucker(rotated, 0, len(rotated)-1, tolerance, keep)

	out := make([]geom.Point, 0, len(rotated))
	for i, k := range keep {
		if k {
			out = append(out, rotated[i])
		}
	}
	// Drop the duplicate closing point introduced by treating index 0 and
	// len-1 as the open-curve endpoints of a ring.
	if len(out) > 1 && out[0].ApproxEqual(out[len(out)-1], 1e-12) {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return r
	}
	ring, _ := geom.NewRing(out)
	return ring
}

func farthestIndex(points []geom.Point) int {
	best, bestDist := 0, -1.0
	for i, p := range points {
		d := p.Dist(points[0])
		if d > bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func rotate(points []geom.Point, start int) []geom.Point {
	n := len(points)
	out := make([]geom.Point, n+1)
	for i := 0; i <= n; i++ {
		out[i] = points[(start+i)%n]
	}
	return out
}

func douglasPeucker(points []geom.Point, lo, hi int, tolerance float64, keep []bool) {
	if hi <= lo+1 {
		return
	}
	maxDist, maxIdx := -1.0, -1
	for i := lo + 1; i < hi; i++ {
		d := perpendicularDistance(points[i], points[lo], points[hi])
		if d > maxDist {
			maxDist, maxIdx = d, i
		}
	}
	if maxDist <= tolerance {
		return
	}
	keep[maxIdx] = true
	douglasPeucker(points, lo, maxIdx, tolerance, keep)
	douglasPeucker(points, maxIdx, hi, tolerance, keep)
}

func perpendicularDistance(p, a, b geom.Point) float64 {
	if a.ApproxEqual(b, 0) {
		return p.Dist(a)
	}
	vx, vy := b.X-a.X, b.Y-a.Y
	num := vy*p.X - vx*p.Y + b.X*a.Y - b.Y*a.X
	den := vx*vx + vy*vy
	return math.Abs(num) / math.Sqrt(den)
}
