package ingest

import (
	"golang.org/x/image/math/fixed"

	"github.com/srwiley/rasterx"
)

// segmentKind tags a decoded path segment.
type segmentKind int

const (
	segMoveTo segmentKind = iota
	segLineTo
	segQuadTo
	segCubeTo
	segClose
)

// segment is one command of a subpath, decoded out of a
// rasterx.Path/oksvg parse result, in float64 sheet-unit coordinates
// (oksvg/rasterx work in fixed.Point26_6; we convert once, here, at the
// ingest boundary, and do all subsequent geometry in float64).
type segment struct {
	kind     segmentKind
	points   [3]ptf // up to 3 control/end points, used count depends on kind
	nPoints  int
}

type ptf struct{ X, Y float64 }

func fromFixed(p fixed.Point26_6) ptf {
	return ptf{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// pathRecorder implements rasterx's Adder interface (Start/Line/
// QuadBezier/CubeBezier/Stop, the same shape as freetype's raster.Adder,
// which rasterx models itself on) to capture a subpath's commands
// instead of rasterizing them. oksvg.SvgPath.Path.Replay(adder) drives
// any Adder implementation through the path it parsed; go-nest uses that
// hook to pull the parsed geometry into its own representation rather
// than a rasterizer.
type pathRecorder struct {
	subpaths [][]segment
	cur      []segment
}

func (r *pathRecorder) Start(a fixed.Point26_6) {
	if len(r.cur) > 0 {
		r.subpaths = append(r.subpaths, r.cur)
	}
	r.cur = []segment{{kind: segMoveTo, points: [3]ptf{fromFixed(a)}, nPoints: 1}}
}

func (r *pathRecorder) Line(b fixed.Point26_6) {
	r.cur = append(r.cur, segment{kind: segLineTo, points: [3]ptf{fromFixed(b)}, nPoints: 1})
}

func (r *pathRecorder) QuadBezier(b, c fixed.Point26_6) {
	r.cur = append(r.cur, segment{kind: segQuadTo, points: [3]ptf{fromFixed(b), fromFixed(c)}, nPoints: 2})
}

func (r *pathRecorder) CubeBezier(b, c, d fixed.Point26_6) {
	r.cur = append(r.cur, segment{kind: segCubeTo, points: [3]ptf{fromFixed(b), fromFixed(c), fromFixed(d)}, nPoints: 3})
}

func (r *pathRecorder) Stop(closeLoop bool) {
	if closeLoop {
		r.cur = append(r.cur, segment{kind: segClose})
	}
}

func (r *pathRecorder) finish() [][]segment {
	if len(r.cur) > 0 {
		r.subpaths = append(r.subpaths, r.cur)
		r.cur = nil
	}
	return r.subpaths
}

// decodeRasterxPath replays p into a pathRecorder and returns its
// subpaths, keyed by rasterx.Path's own Start/Stop subpath boundaries
// (the first subpath is the boundary, later ones are holes, per spec.md
// §4.C rule 2).
func decodeRasterxPath(p rasterx.Path) [][]segment {
	var rec pathRecorder
	p.Replay(&rec)
	return rec.finish()
}
