package ingest

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"

	"github.com/arl/go-nest/geom"
	"github.com/arl/go-nest/offset"
)

// retainedAttrs mirrors original_source/python/packaide/packaide.py's
// SVG_RETAIN_ATTRS: presentation/identification attributes preserved
// opaquely on round trip (SPEC_FULL.md "Presentation-attribute
// round-tripping").
var retainedAttrs = map[string]bool{
	"fill": true, "fill-opacity": true, "fill-rule": true,
	"stroke": true, "stroke-width": true, "stroke-opacity": true,
	"stroke-linecap": true, "stroke-linejoin": true, "stroke-dasharray": true,
	"stroke-dashoffset": true, "stroke-miterlimit": true,
	"opacity": true, "color": true, "visibility": true, "display": true,
	"class": true, "id": true, "name": true,
}

// Element is an opaque source document element, round-tripped into the
// output unmodified except for the transform spec.md §6 adds.
type Element struct {
	Tag   string
	Attrs map[string]string
}

// extractAttrs does a shallow encoding/xml walk of doc collecting, in
// document order, the retained presentation attributes of every
// path-like element. This runs alongside oksvg's geometric parse (which
// drops everything but color/fill state) purely to preserve the
// attributes SPEC_FULL.md's round-tripping requirement names.
func extractAttrs(doc string) ([]Element, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))
	var elems []Element
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "path", "rect", "circle", "ellipse", "polygon", "polyline", "line":
		default:
			continue
		}
		e := Element{Tag: start.Name.Local, Attrs: map[string]string{}}
		for _, a := range start.Attr {
			if retainedAttrs[a.Name.Local] {
				e.Attrs[a.Name.Local] = a.Value
			}
		}
		elems = append(elems, e)
	}
	return elems, nil
}

// ParseViewBox extracts the sheet rectangle from an SVG document's
// viewBox attribute, per spec.md §6.
func ParseViewBox(doc string) (geom.Rect, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err != nil {
			return geom.Rect{}, fmt.Errorf("ingest: no viewBox found: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "svg" {
			continue
		}
		for _, a := range start.Attr {
			if a.Name.Local != "viewBox" {
				continue
			}
			fields := strings.Fields(a.Value)
			if len(fields) != 4 {
				return geom.Rect{}, fmt.Errorf("ingest: malformed viewBox %q", a.Value)
			}
			vals := make([]float64, 4)
			for i, f := range fields {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return geom.Rect{}, fmt.Errorf("ingest: malformed viewBox %q: %w", a.Value, err)
				}
				vals[i] = v
			}
			return geom.Rect{
				Min: geom.Point{X: vals[0], Y: vals[1]},
				Max: geom.Point{X: vals[0] + vals[2], Y: vals[1] + vals[3]},
			}, nil
		}
		return geom.Rect{}, fmt.Errorf("ingest: svg element has no viewBox")
	}
}

// BlankSheet synthesizes a bare rectangular sheet document, the
// original_source/python/packaide/packaide.py blank_sheet helper.
func BlankSheet(width, height float64) string {
	return fmt.Sprintf(`<svg viewBox="0 0 %g %g" width="%g" height="%g"></svg>`, width, height, width, height)
}

// ringFromSubpath discretizes one subpath's segments by arc length at
// spacing, per spec.md §4.C rules 1 and 3. ok is false if the subpath is
// open (first/last points farther than tolerance apart) or discretizes
// to fewer than three points.
func ringFromSubpath(segs []segment, tolerance float64) (geom.Ring, bool) {
	fine := flatten(segs)
	if len(fine) < 2 {
		return geom.Ring{}, false
	}
	if fine[0].Dist(fine[len(fine)-1]) > tolerance {
		return geom.Ring{}, false // open path, rule 1
	}
	sampled := resampleByArcLength(fine, tolerance)
	return geom.NewRing(sampled)
}

// extractPolygons is the shared core of ParseShapes and ParseSheet: it
// discretizes and conservatively dilates/erodes every closed path in doc
// per spec.md §4.C, assigning ids starting at nextID.
func extractPolygons(doc string, tolerance, partOffset float64, nextID int) ([]geom.PolygonWithHoles, []Element, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, nil, fmt.Errorf("ingest: %w", err)
	}
	attrs, err := extractAttrs(doc)
	if err != nil {
		return nil, nil, err
	}

	var polys []geom.PolygonWithHoles
	var elems []Element
	for i, svgPath := range icon.SVGPaths {
		subpaths := decodeRasterxPath(svgPath.Path)
		if len(subpaths) == 0 {
			continue
		}

		outerRing, ok := ringFromSubpath(subpaths[0], tolerance)
		if !ok {
			continue // dropped: open or degenerate, spec.md §4.C rule 1 / §7 kind 2
		}

		// Conservative dilation: grow by 1.5*tolerance, then simplify
		// with tolerance (spec.md §4.C rule 4).
		dilated := offset.Dilate(outerRing, 1.5*tolerance, tolerance)
		if len(dilated) == 0 {
			continue
		}
		boundary := largestRing(dilated)

		// Part offset: further dilation by the user's clearance
		// parameter (spec.md §4.C rule 5); holes are not dilated.
		if partOffset > 0 {
			withOffset := offset.Dilate(boundary, partOffset, tolerance)
			if len(withOffset) == 0 {
				continue
			}
			boundary = largestRing(withOffset)
		}

		var holes []geom.Ring
		for _, holeSegs := range subpaths[1:] {
			holeRing, ok := ringFromSubpath(holeSegs, tolerance)
			if !ok {
				continue
			}
			eroded := offset.Erode(holeRing, 1.5*tolerance, tolerance)
			// A hole may erode into several components (design note
			// "MultiPolygon after erosion"); flatten them all into the
			// hole list in insertion order.
			holes = append(holes, eroded...)
		}

		id := nextID
		nextID++
		polys = append(polys, geom.NewPolygon(id, boundary, holes))
		if i < len(attrs) {
			elems = append(elems, attrs[i])
		} else {
			elems = append(elems, Element{Tag: "path"})
		}
	}
	return polys, elems, nil
}

func largestRing(rings []geom.Ring) geom.Ring {
	best := rings[0]
	for _, r := range rings[1:] {
		if r.Area() > best.Area() {
			best = r
		}
	}
	return best
}

// ParseShapes parses an SVG document of part shapes into polygons (with
// the user's offset already applied to each boundary) and their parallel
// round-trippable elements, per spec.md §6's ingest input contract.
func ParseShapes(doc string, tolerance, partOffset float64) ([]geom.PolygonWithHoles, []Element, error) {
	return extractPolygons(doc, tolerance, partOffset, 0)
}

// ParseSheet parses a sheet document: its viewBox gives the rectangle,
// its contained closed shapes become forbidden regions (spec.md §3, §6).
// Sheet holes are never dilated by a part offset.
func ParseSheet(doc string, tolerance float64, nextID int) (geom.Rect, []geom.PolygonWithHoles, int, error) {
	rect, err := ParseViewBox(doc)
	if err != nil {
		return geom.Rect{}, nil, nextID, err
	}
	holes, _, err := extractPolygons(doc, tolerance, 0, nextID)
	if err != nil {
		return geom.Rect{}, nil, nextID, err
	}
	return rect, holes, nextID + len(holes), nil
}
