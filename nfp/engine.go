package nfp

import (
	"fmt"

	"github.com/arl/go-nest/geom"
	"github.com/arl/go-nest/offset"
)

// Engine computes No-Fit-Polygons and Inner-Fit-Polygons for a single
// pack call. It is stateless itself; all memoization lives in the State
// passed to each call.
type Engine struct {
	State *State
}

// NewEngine returns an Engine backed by state.
func NewEngine(state *State) *Engine {
	return &Engine{State: state}
}

func toFingerprints(rings []geom.Ring) []ringFingerprint {
	out := make([]ringFingerprint, len(rings))
	for i, r := range rings {
		pts := make([]point2, len(r.Points))
		for j, p := range r.Points {
			pts[j] = point2{p.X, p.Y}
		}
		out[i] = ringFingerprint{points: pts}
	}
	return out
}

func fromFingerprints(fs []ringFingerprint) []geom.Ring {
	out := make([]geom.Ring, len(fs))
	for i, f := range fs {
		pts := make([]geom.Point, len(f.points))
		for j, p := range f.points {
			pts[j] = geom.Point{X: p.X, Y: p.Y}
		}
		r, _ := geom.NewRing(pts)
		out[i] = r
	}
	return out
}

// NFP returns the combined forbidden region for placing orbiter's
// reference point such that orbiter overlaps stationary, at orbiter
// rotation angleRad (rotationIndex identifies this rotation for caching
// purposes — see pack.Driver). Per DESIGN.md's NFP-with-holes resolution,
// when stationary has holes the result already subtracts, from the outer
// Minkowski obstacle, the interior-fit region of each hole (so that a
// part sized to fit inside a hole produces a feasible placement there,
// enabling part-in-part nesting per spec.md §8 scenario 4).
//
// The State stores the result relative to stationary's reference point,
// so two calls with the same (stationary.ID, orbiter.ID, rotationIndex)
// against the same State return identical rings, shifted by however far
// stationary's reference point moved between them (spec.md §4.D
// determinism / §8 cache-equivalence).
func (e *Engine) NFP(stationary, orbiter geom.PolygonWithHoles, rotationIndex int, angleRad float64) ([]geom.Ring, error) {
	key := Key{StationaryID: stationary.ID, OrbiterID: orbiter.ID, RotationIndex: rotationIndex}
	base := stationary.RefPoint()
	if cached, ok := e.State.get(key); ok {
		return translateRings(fromFingerprints(cached), base), nil
	}
	stationary = stationary.Translate(base.Neg())

	rotated := orbiter.RotatedAbout(orbiter.RefPoint(), angleRad)
	ref := rotated.RefPoint()
	// The set of valid translations t is {sA + (ref-p) : sA in stationary,
	// p in orbiter}, i.e. the Minkowski sum of stationary with {ref-p}.
	// Centering orbiter on its own reference point before reflecting
	// through the origin produces exactly that set directly; reflecting
	// the uncentered ring through ref (as opposed to through ref/2) would
	// double the reference point's own offset into every result.
	centered := rotated.Outer.Translate(ref.Neg())
	reflected := reflectAbout(centered, geom.Point{})

	outerNFP, err := minkowskiSumRings(stationary.Outer, reflected)
	if err != nil {
		return nil, fmt.Errorf("nfp: outer sum: %w", err)
	}

	result := outerNFP
	for _, hole := range stationary.Holes {
		allowed, err := e.IFP(hole, rotated)
		if err != nil {
			return nil, fmt.Errorf("nfp: hole ifp: %w", err)
		}
		if len(allowed) > 0 {
			result = offset.Difference(result, allowed)
		}
	}

	for _, r := range result {
		if !r.IsSimple() {
			return nil, fmt.Errorf("nfp: kernel produced a non-simple ring for stationary=%d orbiter=%d", stationary.ID, orbiter.ID)
		}
	}

	e.State.put(key, toFingerprints(result))
	return translateRings(result, base), nil
}

func translateRings(rings []geom.Ring, d geom.Point) []geom.Ring {
	out := make([]geom.Ring, len(rings))
	for i, r := range rings {
		out[i] = r.Translate(d)
	}
	return out
}

// IFP returns the Inner-Fit Polygon of orbiter within container: the
// locus of translations of orbiter's reference point such that orbiter
// lies inside container and touches its boundary (spec.md §4.D). Its
// interior is the set of translations keeping orbiter strictly inside.
//
// This is computed as the intersection, over every vertex v of orbiter's
// outer boundary, of container translated by -(v - ref). That
// intersection is exact when container is convex. For a concave
// container it only keeps every vertex of orbiter inside, so it can
// include translations where an edge of orbiter crosses the container's
// boundary. The containers passed in are sheet rectangles (from
// pack.Driver) and the holes of stationary polygons (from NFP).
func (e *Engine) IFP(container geom.Ring, orbiter geom.PolygonWithHoles) ([]geom.Ring, error) {
	ref := orbiter.RefPoint()
	containerRing := container.EnsureOrientation(geom.CCW)

	acc := []geom.Ring{containerRing}
	for _, v := range orbiter.Outer.Points {
		shifted := containerRing.Translate(ref.Sub(v))
		acc = offset.Intersect(acc, []geom.Ring{shifted})
		if len(acc) == 0 {
			return nil, nil
		}
	}
	return acc, nil
}

// reflectAbout returns r reflected through point p: every vertex v
// becomes 2p - v. This is the "-B" of the Minkowski-sum construction of
// an NFP (spec.md §4.D option (b)). NFP callers pass a ring already
// centered on the orbiter's own reference point and p as the origin, so
// the reflection alone yields {ref-v}, the set the Minkowski sum needs;
// reflecting an uncentered ring through ref itself would double-count
// the reference point's offset.
func reflectAbout(r geom.Ring, p geom.Point) geom.Ring {
	out := make([]geom.Point, r.Len())
	for i, v := range r.Points {
		out[i] = geom.Point{X: 2*p.X - v.X, Y: 2*p.Y - v.Y}
	}
	ring, _ := geom.NewRing(out)
	return ring.EnsureOrientation(geom.CCW)
}

// minkowskiSumRings computes the Minkowski sum of two simple rings by
// triangulating both and unioning the pairwise convex sums of their
// triangles (spec.md §4.D option (b), the triangulate-and-union
// construction for non-convex polygons).
func minkowskiSumRings(a, b geom.Ring) ([]geom.Ring, error) {
	trisA := triangulate(a.EnsureOrientation(geom.CCW))
	trisB := triangulate(b.EnsureOrientation(geom.CCW))
	if len(trisA) == 0 || len(trisB) == 0 {
		return nil, fmt.Errorf("degenerate input to minkowski sum")
	}

	pieces := make([][]geom.Point, 0, len(trisA)*len(trisB))
	for _, ta := range trisA {
		for _, tb := range trisB {
			sum := convexMinkowskiSum(ta[:], tb[:])
			pieces = append(pieces, sum)
		}
	}
	return unionTriangleSums(pieces), nil
}
