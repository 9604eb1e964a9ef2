package nfp

import "github.com/arl/go-nest/geom"

// triangulate decomposes a simple CCW ring into triangles by ear
// clipping, the standard simple-polygon decomposition spec.md §4.D's
// "Minkowski sum via convex decomposition" option (b) calls for. Each
// returned triangle is itself convex, letting the engine compute their
// pairwise Minkowski sums with convexMinkowskiSum and union the results.
func triangulate(r geom.Ring) [][3]geom.Point {
	pts := append([]geom.Point(nil), r.EnsureOrientation(geom.CCW).Points...)
	var tris [][3]geom.Point

	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}

	guard := 0
	for len(idx) > 3 && guard < 10*len(pts)+16 {
		guard++
		n := len(idx)
		earFound := false
		for i := 0; i < n; i++ {
			ia := idx[(i-1+n)%n]
			ib := idx[i]
			ic := idx[(i+1)%n]
			a, b, c := pts[ia], pts[ib], pts[ic]
			if !isConvexVertex(a, b, c) {
				continue
			}
			if triangleContainsAny(a, b, c, pts, idx, ia, ib, ic) {
				continue
			}
			tris = append(tris, [3]geom.Point{a, b, c})
			idx = append(append([]int(nil), idx[:i]...), idx[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			// Degenerate/self-intersecting input: fan-triangulate the
			// remainder rather than looping forever.
			break
		}
	}
	if len(idx) >= 3 {
		for i := 1; i < len(idx)-1; i++ {
			tris = append(tris, [3]geom.Point{pts[idx[0]], pts[idx[i]], pts[idx[i+1]]})
		}
	}
	return tris
}

func isConvexVertex(a, b, c geom.Point) bool {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	return cross > 0
}

func triangleContainsAny(a, b, c geom.Point, pts []geom.Point, idx []int, ia, ib, ic int) bool {
	for _, j := range idx {
		if j == ia || j == ib || j == ic {
			continue
		}
		if pointInTriangle(pts[j], a, b, c) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c geom.Point) bool {
	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func sign(p, a, b geom.Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
