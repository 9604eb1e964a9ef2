package nfp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/go-nest/geom"
)

func square(id int, x, y, w, h float64) geom.PolygonWithHoles {
	r, _ := geom.NewRing([]geom.Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}})
	return geom.NewPolygon(id, r, nil)
}

func TestNFPDeterminism(t *testing.T) {
	state := New()
	eng := NewEngine(state)

	a := square(1, 0, 0, 10, 10)
	b := square(2, 0, 0, 4, 4)

	r1, err := eng.NFP(a, b, 0, 0)
	require.NoError(t, err)
	r2, err := eng.NFP(a, b, 0, 0)
	require.NoError(t, err)

	require.Equal(t, len(r1), len(r2))
	for i := range r1 {
		require.Equal(t, len(r1[i].Points), len(r2[i].Points))
		for j := range r1[i].Points {
			assert.InDelta(t, r1[i].Points[j].X, r2[i].Points[j].X, 1e-9)
			assert.InDelta(t, r1[i].Points[j].Y, r2[i].Points[j].Y, 1e-9)
		}
	}
	assert.Equal(t, 1, state.Len())
}

func TestNFPCacheHitAcrossEngines(t *testing.T) {
	state := New()
	a := square(1, 0, 0, 10, 10)
	b := square(2, 0, 0, 4, 4)

	eng1 := NewEngine(state)
	_, err := eng1.NFP(a, b, 0, 0)
	require.NoError(t, err)

	eng2 := NewEngine(state)
	before := state.Len()
	_, err = eng2.NFP(a, b, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, before, state.Len())
}

// TestNFPInvariantToOrbitersCanonicalPosition guards against reflecting
// the orbiter through its reference point instead of through the origin
// after centering: the NFP depends only on the orbiter's shape relative
// to its own reference point, never on where that shape's vertices
// happen to sit before placement, so translating the orbiter's canonical
// pose must leave the result unchanged.
func TestNFPInvariantToOrbitersCanonicalPosition(t *testing.T) {
	a := square(1, 0, 0, 10, 10)
	atOrigin := square(2, 0, 0, 4, 4)
	shifted := square(2, 7, -3, 4, 4)

	r1, err := NewEngine(New()).NFP(a, atOrigin, 0, 0)
	require.NoError(t, err)
	r2, err := NewEngine(New()).NFP(a, shifted, 0, 0)
	require.NoError(t, err)

	require.Equal(t, len(r1), len(r2))
	for i := range r1 {
		require.Equal(t, len(r1[i].Points), len(r2[i].Points))
		for j := range r1[i].Points {
			assert.InDelta(t, r1[i].Points[j].X, r2[i].Points[j].X, 1e-9)
			assert.InDelta(t, r1[i].Points[j].Y, r2[i].Points[j].Y, 1e-9)
		}
	}
}

func TestIFPRectangleContainsSmallOrbiter(t *testing.T) {
	state := New()
	eng := NewEngine(state)

	container := square(0, 0, 0, 20, 20).Outer
	orbiter := square(1, 0, 0, 4, 4)

	ifp, err := eng.IFP(container, orbiter)
	require.NoError(t, err)
	require.NotEmpty(t, ifp)
	// The feasible region for the reference point should be strictly
	// smaller than the container itself (orbiter occupies some space).
	assert.Less(t, ifp[0].Area(), container.Area())
}
