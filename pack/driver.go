package pack

import (
	"math"
	"sort"

	"github.com/aurelien-rainone/assertgo"

	"github.com/arl/go-nest/buildctx"
	"github.com/arl/go-nest/geom"
	"github.com/arl/go-nest/nfp"
	"github.com/arl/go-nest/offset"
)

// Driver runs the first-fit-decreasing placement algorithm of spec.md
// §4.E over a set of sheets and parts.
type Driver struct {
	Engine          *nfp.Engine
	Rotations       int
	PartialSolution bool
	Ctx             *buildctx.Context
}

// NewDriver returns a Driver. If ctx is nil a throwaway context is used.
func NewDriver(engine *nfp.Engine, rotations int, partialSolution bool, ctx *buildctx.Context) *Driver {
	if ctx == nil {
		ctx = buildctx.New()
	}
	if rotations < 1 {
		rotations = 1
	}
	return &Driver{Engine: engine, Rotations: rotations, PartialSolution: partialSolution, Ctx: ctx}
}

type indexedPart struct {
	part  geom.PolygonWithHoles
	index int
}

// Pack orders parts by descending bounding-box area (ties broken by
// original index) and places them one at a time across sheets, per
// spec.md §4.E.
func (d *Driver) Pack(sheets []*Sheet, parts []geom.PolygonWithHoles) *Result {
	d.Ctx.StartTimer(buildctx.TimerPlacement)
	defer d.Ctx.StopTimer(buildctx.TimerPlacement)

	ordered := make([]indexedPart, len(parts))
	for i, p := range parts {
		ordered[i] = indexedPart{part: p, index: i}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].part.Bounds().Width()*ordered[i].part.Bounds().Height() >
			ordered[j].part.Bounds().Width()*ordered[j].part.Bounds().Height()
	})

	res := &Result{}
	for _, ip := range ordered {
		placement, ok := d.placeOne(sheets, ip.part)
		if !ok {
			res.FailedIDs = append(res.FailedIDs, ip.part.ID)
			d.Ctx.Log(buildctx.Warning, "part %d: no feasible placement on any sheet/rotation", ip.part.ID)
			if !d.PartialSolution {
				res.Placements = nil
				res.Status = StatusFailure | DetailInfeasible
				return res
			}
			continue
		}
		placed := placement.Transform.Apply(ip.part)
		if err := d.checkNoOverlap(sheets[placement.SheetIndex], placed); err != nil {
			res.Status = StatusFailure | DetailInvariantViolation
			d.Ctx.Log(buildctx.Error, "part %d: %v", ip.part.ID, err)
			return res
		}
		sheets[placement.SheetIndex].AddObstacle(placed)
		res.Placements = append(res.Placements, placement)
	}

	switch {
	case len(res.FailedIDs) == 0:
		res.Status = StatusSuccess
	default:
		res.Status = StatusPartial | DetailInfeasible
	}
	assert.True(len(res.Placements)+len(res.FailedIDs) == len(parts),
		"pack: accounting mismatch, placed=%d failed=%d parts=%d", len(res.Placements), len(res.FailedIDs), len(parts))
	return res
}

// placeOne finds the minimum-cost feasible placement for part across
// every sheet and rotation, per spec.md §4.E steps 1-2.
func (d *Driver) placeOne(sheets []*Sheet, part geom.PolygonWithHoles) (Placement, bool) {
	bestCost := math.Inf(1)
	bestX := math.Inf(1)
	var best Placement
	found := false

	for sheetIdx, sheet := range sheets {
		for rotIdx := 0; rotIdx < d.Rotations; rotIdx++ {
			angle := 2 * math.Pi * float64(rotIdx) / float64(d.Rotations)
			region, err := d.feasible(sheet, part, rotIdx, angle)
			if err != nil {
				d.Ctx.Log(buildctx.Warning, "part %d sheet %d rotation %d: %v", part.ID, sheetIdx, rotIdx, err)
				continue // spec.md §7 kind 4: skip this attempt, others proceed
			}
			vertex, ok := bestVertex(region)
			if !ok {
				continue
			}
			cost := vertex.Y
			if !found || cost < bestCost || (cost == bestCost && vertex.X < bestX) {
				found = true
				bestCost = cost
				bestX = vertex.X
				best = Placement{
					PolygonID:  part.ID,
					SheetIndex: sheetIdx,
					Transform: Transform{
						Translate:     vertex,
						RotateRad:     angle,
						RotationIndex: rotIdx,
					},
				}
			}
		}
	}
	return best, found
}

// feasible computes Feasible(B) on sheet at the given rotation, per
// spec.md §4.D: Interior(IFP(R,B)) minus the union of Interior(NFP(A_i,B))
// over the sheet's obstacles.
func (d *Driver) feasible(sheet *Sheet, part geom.PolygonWithHoles, rotIdx int, angle float64) ([]geom.Ring, error) {
	rotated := part.RotatedAbout(part.RefPoint(), angle)

	region, err := d.Engine.IFP(sheet.rectRing(), rotated)
	if err != nil {
		return nil, err
	}
	for _, obstacle := range sheet.Obstacles {
		forbidden, err := d.Engine.NFP(obstacle, part, rotIdx, angle)
		if err != nil {
			return nil, err
		}
		if len(forbidden) > 0 {
			region = offset.Difference(region, forbidden)
		}
		if len(region) == 0 {
			break
		}
	}
	return region, nil
}

// checkNoOverlap is the fatal invariant check of spec.md §7 kind 5: a
// placement that post-validates as overlapping an obstacle is an
// internal bug, not a recoverable condition.
func (d *Driver) checkNoOverlap(sheet *Sheet, placed geom.PolygonWithHoles) error {
	if !sheet.Rect.ContainsRect(placed.Bounds()) {
		return errContainment
	}
	for _, obstacle := range sheet.Obstacles {
		if boundsOverlapSolid(obstacle, placed) {
			return errOverlap
		}
	}
	return nil
}

func boundsOverlapSolid(a, b geom.PolygonWithHoles) bool {
	if !a.Bounds().Intersects(b.Bounds()) {
		return false
	}
	for _, p := range b.Outer.Points {
		if a.ContainsPoint(p, geom.DefaultEpsilon) {
			return true
		}
	}
	for _, p := range a.Outer.Points {
		if b.ContainsPoint(p, geom.DefaultEpsilon) {
			return true
		}
	}
	return false
}
