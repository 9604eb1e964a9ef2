// Package output renders a pack.Result back to SVG, grounded on
// original_source/python/packaide/packaide.py's pack()/flatten_shape()
// output stage and rendered with github.com/ajstarks/svgo.
package output

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/arl/go-nest/geom"
	"github.com/arl/go-nest/ingest"
	"github.com/arl/go-nest/pack"
)

// Sheet bundles one pack.Sheet's rectangle with the polygon geometry and
// round-trippable elements of every part placed on it, enough to render
// one SVG document.
type Sheet struct {
	Rect geom.Rect
	// Parts maps a placed polygon's id to its unplaced (canonical pose)
	// geometry, as produced by ingest.ParseShapes.
	Parts map[int]geom.PolygonWithHoles
	// Elements maps a placed polygon's id to its round-tripped source
	// element, as produced by ingest.ParseShapes.
	Elements map[int]ingest.Element
}

// WriteSheet renders one sheet's placements to w as an SVG document, in
// the "translate(tx,ty) rotate(r,px,py)" transform form
// original_source's flatten_shape/pack produce.
func WriteSheet(w io.Writer, sheet Sheet, placements []pack.Placement) error {
	canvas := svg.New(w)
	width := int(sheet.Rect.Width())
	height := int(sheet.Rect.Height())
	canvas.Start(width, height)
	defer canvas.End()

	for _, pl := range placements {
		part, ok := sheet.Parts[pl.PolygonID]
		if !ok {
			return fmt.Errorf("output: placement references unknown polygon id %d", pl.PolygonID)
		}
		ref := part.RefPoint()
		transform := fmt.Sprintf("translate(%.6f,%.6f) rotate(%.6f,%.6f,%.6f)",
			pl.Transform.Translate.X-ref.X, pl.Transform.Translate.Y-ref.Y,
			radToDeg(pl.Transform.RotateRad), ref.X, ref.Y)

		canvas.Gtransform(transform)
		writePath(canvas, part, sheet.Elements[pl.PolygonID])
		canvas.Gend()
	}
	return nil
}

// writePath emits one polygon-with-holes as a single SVG path using the
// even-odd fill rule (so CCW outer / CW holes render as solid-with-hole),
// preserving elem's retained presentation attributes.
func writePath(canvas *svg.SVG, part geom.PolygonWithHoles, elem ingest.Element) {
	var d strings.Builder
	writeSubpath(&d, part.Outer)
	for _, h := range part.Holes {
		writeSubpath(&d, h)
	}

	attrs := []string{`fill-rule="evenodd"`}
	for k, v := range elem.Attrs {
		if k == "d" {
			continue
		}
		attrs = append(attrs, fmt.Sprintf(`%s="%s"`, k, v))
	}
	canvas.Path(d.String(), attrs...)
}

func writeSubpath(d *strings.Builder, r geom.Ring) {
	for i, p := range r.Points {
		if i == 0 {
			fmt.Fprintf(d, "M%.6f,%.6f", p.X, p.Y)
		} else {
			fmt.Fprintf(d, "L%.6f,%.6f", p.X, p.Y)
		}
	}
	d.WriteString("Z")
}

func radToDeg(r float64) float64 {
	return r * 180 / 3.141592653589793
}
