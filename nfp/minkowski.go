package nfp

import (
	"sort"

	"github.com/arl/go-nest/geom"

	"github.com/arl/go-nest/offset"
)

// convexMinkowskiSum computes the Minkowski sum of two convex polygons
// (both CCW) by the classic merge-by-edge-angle construction: the edge
// vectors of the sum are the edge vectors of a and b merged in increasing
// polar angle order. For convex inputs, this is exact and produces at
// most |a|+|b| vertices, matching spec.md §4.D's stated bound.
func convexMinkowskiSum(a, b []geom.Point) []geom.Point {
	a = rotateToBottommost(a)
	b = rotateToBottommost(b)

	edgesA := edgeVectors(a)
	edgesB := edgeVectors(b)

	sum := make([]geom.Point, 0, len(a)+len(b))
	cur := a[0].Add(b[0])
	sum = append(sum, cur)

	i, j := 0, 0
	for i < len(edgesA) || j < len(edgesB) {
		var useA bool
		switch {
		case i >= len(edgesA):
			useA = false
		case j >= len(edgesB):
			useA = true
		default:
			useA = cross(edgesA[i], edgesB[j]) >= 0
		}
		var e geom.Point
		if useA {
			e = edgesA[i]
			i++
		} else {
			e = edgesB[j]
			j++
		}
		cur = cur.Add(e)
		sum = append(sum, cur)
	}
	// Last point duplicates the start; Ring has an implicit closing edge.
	if len(sum) > 1 {
		sum = sum[:len(sum)-1]
	}
	return sum
}

func cross(u, v geom.Point) float64 {
	return u.X*v.Y - u.Y*v.X
}

func edgeVectors(pts []geom.Point) []geom.Point {
	n := len(pts)
	out := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		out[i] = pts[(i+1)%n].Sub(pts[i])
	}
	return out
}

// rotateToBottommost returns pts rotated so that the lowest (then
// leftmost) point comes first, the conventional starting point for the
// edge-merge Minkowski sum algorithm.
func rotateToBottommost(pts []geom.Point) []geom.Point {
	best := 0
	for i, p := range pts {
		if p.Y < pts[best].Y || (p.Y == pts[best].Y && p.X < pts[best].X) {
			best = i
		}
	}
	if best == 0 {
		return pts
	}
	out := make([]geom.Point, len(pts))
	for i := range pts {
		out[i] = pts[(best+i)%len(pts)]
	}
	return out
}

// unionTriangleSums unions a set of (generally overlapping) polygon
// pieces into a minimal set of rings, via the clipper2-backed boolean
// union in the offset package.
func unionTriangleSums(pieces [][]geom.Point) []geom.Ring {
	rings := make([]geom.Ring, 0, len(pieces))
	for _, p := range pieces {
		if len(p) < 3 {
			continue
		}
		r, ok := geom.NewRing(p)
		if !ok {
			continue
		}
		rings = append(rings, r.EnsureOrientation(geom.CCW))
	}
	if len(rings) == 0 {
		return nil
	}
	acc := []geom.Ring{rings[0]}
	for _, r := range rings[1:] {
		acc = offset.Union(acc, []geom.Ring{r})
	}
	sort.Slice(acc, func(i, j int) bool { return acc[i].Area() > acc[j].Area() })
	return acc
}
