package offset

import (
	"github.com/go-clipper/clipper2"

	"github.com/arl/go-nest/geom"
)

// MiterLimit is the miter-join limit beyond which a join falls back to a
// beveled (squared) join, per spec.md §4.B. This bounds vertex count blow
// up on spiky inputs.
const MiterLimit = 5.0

// Offset computes the Minkowski sum (delta > 0, dilation) or difference
// (delta < 0, erosion) of a ring with a disk of radius |delta|, using
// flat/square caps and mitered joins with the package MiterLimit. The
// result is simplified afterward with Simplify(tolerance); it may be
// empty (erosion shrinking the ring away), or contain more than one ring
// (erosion splitting a concave ring into several pieces) — callers must
// handle both.
//
// The caller-supplied tolerance also bounds the Hausdorff distance
// between the true offset boundary and the returned, simplified one.
func Offset(r geom.Ring, delta, tolerance float64) []geom.Ring {
	if !degenerateFree(r) {
		r = dedupe(r)
	}
	if r.Len() < 3 {
		return nil
	}

	opts := clipper.OffsetOptions{MiterLimit: MiterLimit, ArcTolerance: tolerance}
	raw := clipper.InflatePaths(toPaths64([]geom.Ring{r}), delta*scale, clipper.Miter, clipper.ClosedPolygon, opts)

	rings := fromPaths64(raw)
	out := make([]geom.Ring, 0, len(rings))
	for _, ring := range rings {
		simplified := Simplify(ring, tolerance)
		if simplified.Len() >= 3 {
			out = append(out, simplified)
		}
	}
	return out
}

// Dilate grows r outward by distance (distance must be >= 0).
func Dilate(r geom.Ring, distance, tolerance float64) []geom.Ring {
	return Offset(r, distance, tolerance)
}

// Erode shrinks r inward by distance (distance must be >= 0). It may
// return zero rings (the region vanished) or several (the region split).
func Erode(r geom.Ring, distance, tolerance float64) []geom.Ring {
	return Offset(r, -distance, tolerance)
}

// degenerateFree reports whether r has no two consecutive identical
// points, the numeric degeneracy spec.md §4.B says must be pre-filtered.
func degenerateFree(r geom.Ring) bool {
	n := r.Len()
	for i := 0; i < n; i++ {
		if r.At(i).ApproxEqual(r.At(i+1), 0) {
			return false
		}
	}
	return true
}

func dedupe(r geom.Ring) geom.Ring {
	out := make([]geom.Point, 0, r.Len())
	for i, p := range r.Points {
		if i == 0 || !p.ApproxEqual(out[len(out)-1], 1e-12) {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[0].ApproxEqual(out[len(out)-1], 1e-12) {
		out = out[:len(out)-1]
	}
	ring, _ := geom.NewRing(out)
	return ring
}
