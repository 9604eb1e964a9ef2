package ingest

import "github.com/arl/go-nest/geom"

// curveSteps is the number of line segments used to flatten each
// quadratic/cubic Bezier segment before arc-length resampling. It is
// deliberately fine (independent of tolerance) so that the subsequent
// uniform-spacing resample, not this flattening, is what determines the
// output point count and the discretization error spec.md §4.C bounds.
const curveSteps = 32

// flatten walks a subpath's segments into a single fine polyline,
// evaluating Bezier segments parametrically.
func flatten(segs []segment) []geom.Point {
	var pts []geom.Point
	var cur, start ptf
	for _, s := range segs {
		switch s.kind {
		case segMoveTo:
			cur = s.points[0]
			start = cur
			pts = append(pts, geom.Point{X: cur.X, Y: cur.Y})
		case segLineTo:
			cur = s.points[0]
			pts = append(pts, geom.Point{X: cur.X, Y: cur.Y})
		case segQuadTo:
			b, c := s.points[0], s.points[1]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				pts = append(pts, quadPoint(cur, b, c, t))
			}
			cur = c
		case segCubeTo:
			b, c, d := s.points[0], s.points[1], s.points[2]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				pts = append(pts, cubePoint(cur, b, c, d, t))
			}
			cur = d
		case segClose:
			// Return to the subpath's start, so that the closedness check
			// sees a closed path and the arc-length resample covers the
			// closing edge.
			cur = start
			pts = append(pts, geom.Point{X: start.X, Y: start.Y})
		}
	}
	return pts
}

func quadPoint(a, b, c ptf, t float64) geom.Point {
	mt := 1 - t
	x := mt*mt*a.X + 2*mt*t*b.X + t*t*c.X
	y := mt*mt*a.Y + 2*mt*t*b.Y + t*t*c.Y
	return geom.Point{X: x, Y: y}
}

func cubePoint(a, b, c, d ptf, t float64) geom.Point {
	mt := 1 - t
	x := mt*mt*mt*a.X + 3*mt*mt*t*b.X + 3*mt*t*t*c.X + t*t*t*d.X
	y := mt*mt*mt*a.Y + 3*mt*mt*t*b.Y + 3*mt*t*t*c.Y + t*t*t*d.Y
	return geom.Point{X: x, Y: y}
}

// resampleByArcLength walks the fine polyline pts and returns points
// spaced uniformly by arc length at the given spacing, per spec.md §4.C
// rule 3 ("sampled uniformly by arc length at spacing tolerance"). It
// always returns at least 3 points when pts describes a non-degenerate
// closed curve of positive length; callers must check the result length
// themselves and drop anything shorter (spec.md §4.C / §7 kind 2).
func resampleByArcLength(pts []geom.Point, spacing float64) []geom.Point {
	if len(pts) < 2 || spacing <= 0 {
		return pts
	}
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Dist(pts[i])
	}
	if total == 0 {
		return nil
	}
	n := int(total / spacing)
	if n < 3 {
		n = 3
	}

	out := make([]geom.Point, 0, n)
	segIdx := 0
	segStart := 0.0
	segLen := pts[0].Dist(pts[1])
	for i := 0; i < n; i++ {
		target := total * float64(i) / float64(n)
		for segIdx < len(pts)-2 && segStart+segLen < target {
			segStart += segLen
			segIdx++
			segLen = pts[segIdx].Dist(pts[segIdx+1])
		}
		var t float64
		if segLen > 0 {
			t = (target - segStart) / segLen
		}
		a, b := pts[segIdx], pts[segIdx+1]
		out = append(out, geom.Point{
			X: a.X + t*(b.X-a.X),
			Y: a.Y + t*(b.Y-a.Y),
		})
	}
	return out
}
