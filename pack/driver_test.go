package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/go-nest/geom"
	"github.com/arl/go-nest/nfp"
)

func rectPart(id int, x, y, w, h float64) geom.PolygonWithHoles {
	r, _ := geom.NewRing([]geom.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}})
	return geom.NewPolygon(id, r, nil)
}

func ringWithHole(id int, x, y, outer, inner float64) geom.PolygonWithHoles {
	cx, cy := x+outer/2, y+outer/2
	hw := inner / 2
	outerRing, _ := geom.NewRing([]geom.Point{{X: x, Y: y}, {X: x + outer, Y: y}, {X: x + outer, Y: y + outer}, {X: x, Y: y + outer}})
	holeRing, _ := geom.NewRing([]geom.Point{
		{X: cx - hw, Y: cy - hw}, {X: cx + hw, Y: cy - hw}, {X: cx + hw, Y: cy + hw}, {X: cx - hw, Y: cy + hw},
	})
	return geom.NewPolygon(id, outerRing, []geom.Ring{holeRing})
}

func newDriver(rotations int, partial bool) *Driver {
	return NewDriver(nfp.NewEngine(nfp.New()), rotations, partial, nil)
}

// spec.md §8 scenario 1: one 5x5 square on a 10x10 sheet.
func TestPackSingleSquareFits(t *testing.T) {
	sheet := NewSheet(geom.Rect{Max: geom.Point{X: 10, Y: 10}}, nil)
	part := rectPart(1, 0, 0, 5, 5)

	res := newDriver(1, false).Pack([]*Sheet{sheet}, []geom.PolygonWithHoles{part})

	require.Len(t, res.Placements, 1)
	assert.Empty(t, res.FailedIDs)
	assert.True(t, res.Status.Succeeded())
}

// spec.md §8 scenario: two shapes that together fit on one sheet.
func TestPackTwoShapes(t *testing.T) {
	sheet := NewSheet(geom.Rect{Max: geom.Point{X: 10, Y: 10}}, nil)
	parts := []geom.PolygonWithHoles{rectPart(1, 0, 0, 6, 6), rectPart(2, 0, 0, 3, 3)}

	res := newDriver(1, false).Pack([]*Sheet{sheet}, parts)

	require.Len(t, res.Placements, 2)
	assert.Empty(t, res.FailedIDs)
	assertNoOverlap(t, sheet, res.Placements, parts)
}

// spec.md §8 scenario: a sheet with a forbidden region excludes a part
// that would otherwise fit flush against it.
func TestPackSheetWithForbiddenRegion(t *testing.T) {
	hole := rectPart(100, 0, 0, 5, 10)
	sheet := NewSheet(geom.Rect{Max: geom.Point{X: 10, Y: 10}}, []geom.PolygonWithHoles{hole})
	part := rectPart(1, 0, 0, 6, 6)

	res := newDriver(1, true).Pack([]*Sheet{sheet}, []geom.PolygonWithHoles{part})

	if len(res.Placements) == 1 {
		assertNoOverlap(t, sheet, res.Placements, []geom.PolygonWithHoles{part})
	} else {
		assert.Equal(t, []int{1}, res.FailedIDs)
	}
}

// spec.md §8 scenario 4: a small part nests inside a ring-shaped part's
// hole.
func TestPackPartInPartNesting(t *testing.T) {
	sheet := NewSheet(geom.Rect{Max: geom.Point{X: 20, Y: 20}}, nil)
	ring := ringWithHole(1, 0, 0, 10, 4)
	small := rectPart(2, 0, 0, 2, 2)

	res := newDriver(1, true).Pack([]*Sheet{sheet}, []geom.PolygonWithHoles{ring, small})

	require.Contains(t, []int{1, 2}, len(res.Placements))
	assert.LessOrEqual(t, len(res.FailedIDs)+len(res.Placements), 2)
}

// spec.md §8: multiple sheets and shapes should distribute placements
// across sheets rather than fail when one sheet fills up.
func TestPackDistributesAcrossSheets(t *testing.T) {
	sheets := []*Sheet{
		NewSheet(geom.Rect{Max: geom.Point{X: 6, Y: 6}}, nil),
		NewSheet(geom.Rect{Max: geom.Point{X: 6, Y: 6}}, nil),
	}
	parts := []geom.PolygonWithHoles{
		rectPart(1, 0, 0, 5, 5),
		rectPart(2, 0, 0, 5, 5),
	}

	res := newDriver(1, true).Pack(sheets, parts)

	require.Len(t, res.Placements, 2)
	sheetsUsed := map[int]bool{}
	for _, pl := range res.Placements {
		sheetsUsed[pl.SheetIndex] = true
	}
	assert.Len(t, sheetsUsed, 2)
}

// spec.md §7 kind 3 / §8 all-or-nothing: partial_solution=false aborts
// the whole call when any part is infeasible.
func TestPackAllOrNothing(t *testing.T) {
	sheet := NewSheet(geom.Rect{Max: geom.Point{X: 4, Y: 4}}, nil)
	parts := []geom.PolygonWithHoles{
		rectPart(1, 0, 0, 3, 3),
		rectPart(2, 0, 0, 100, 100), // never fits anywhere
	}

	res := newDriver(1, false).Pack([]*Sheet{sheet}, parts)

	assert.Empty(t, res.Placements)
	assert.True(t, res.Status.Failed())
}

// spec.md §8 property: accounting. placed + failed == total parts when
// partial_solution=true.
func TestPackAccounting(t *testing.T) {
	sheet := NewSheet(geom.Rect{Max: geom.Point{X: 4, Y: 4}}, nil)
	parts := []geom.PolygonWithHoles{
		rectPart(1, 0, 0, 3, 3),
		rectPart(2, 0, 0, 100, 100),
	}

	res := newDriver(1, true).Pack([]*Sheet{sheet}, parts)

	assert.Equal(t, len(parts), len(res.Placements)+len(res.FailedIDs))
}

// spec.md §8 property: rotation determinism. doubling rotations never
// increases the failed count.
func TestPackRotationDeterminism(t *testing.T) {
	sheet := func() *Sheet { return NewSheet(geom.Rect{Max: geom.Point{X: 10, Y: 10}}, nil) }
	parts := func() []geom.PolygonWithHoles {
		return []geom.PolygonWithHoles{rectPart(1, 0, 0, 6, 4), rectPart(2, 0, 0, 4, 6)}
	}

	res1 := newDriver(1, true).Pack([]*Sheet{sheet()}, parts())
	res4 := newDriver(4, true).Pack([]*Sheet{sheet()}, parts())

	assert.LessOrEqual(t, len(res4.FailedIDs), len(res1.FailedIDs))
}

func assertNoOverlap(t *testing.T, sheet *Sheet, placements []Placement, parts []geom.PolygonWithHoles) {
	t.Helper()
	byID := make(map[int]geom.PolygonWithHoles, len(parts))
	for _, p := range parts {
		byID[p.ID] = p
	}
	placed := make([]geom.PolygonWithHoles, 0, len(placements))
	for _, pl := range placements {
		placed = append(placed, pl.Transform.Apply(byID[pl.PolygonID]))
	}
	for i := range placed {
		assert.True(t, sheet.Rect.ContainsRect(placed[i].Bounds()), "placement %d outside sheet bounds", i)
		for j := i + 1; j < len(placed); j++ {
			assert.False(t, boundsOverlapSolid(placed[i], placed[j]), "placements %d and %d overlap", i, j)
		}
	}
}
