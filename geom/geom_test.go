package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, w, h float64) Ring {
	r, ok := NewRing([]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}})
	if !ok {
		panic("bad square")
	}
	return r
}

func TestRingOrientation(t *testing.T) {
	ccw := square(0, 0, 10, 10)
	require.Equal(t, CCW, ccw.Orientation())
	assert.InDelta(t, 100.0, ccw.Area(), 1e-9)

	cw := ccw.Reversed()
	assert.Equal(t, CW, cw.Orientation())
	assert.InDelta(t, 100.0, cw.Area(), 1e-9)
}

func TestRingEnsureOrientation(t *testing.T) {
	r := square(0, 0, 5, 5).Reversed()
	require.Equal(t, CW, r.Orientation())
	r = r.EnsureOrientation(CCW)
	assert.Equal(t, CCW, r.Orientation())
}

func TestRingContainsPoint(t *testing.T) {
	r := square(0, 0, 10, 10)
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{5, 5}, true},
		{Point{0, 0}, true},
		{Point{10, 10}, true},
		{Point{-1, 5}, false},
		{Point{11, 5}, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, r.ContainsPoint(tt.p, 1e-9), "point %v", tt.p)
	}
}

func TestRingIsSimple(t *testing.T) {
	assert.True(t, square(0, 0, 10, 10).IsSimple())

	bowtie, ok := NewRing([]Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}})
	require.True(t, ok)
	assert.False(t, bowtie.IsSimple())
}

func TestPolygonWithHolesContainment(t *testing.T) {
	outer := square(0, 0, 10, 10)
	hole := square(3, 3, 2, 2).Reversed() // force CW
	poly := NewPolygon(1, outer, []Ring{hole})

	assert.True(t, poly.ContainsPoint(Point{1, 1}, 1e-9))
	assert.False(t, poly.ContainsPoint(Point{4, 4}, 1e-9))
	assert.InDelta(t, 96.0, poly.Area(), 1e-9)
}

func TestPolygonValid(t *testing.T) {
	outer := square(0, 0, 10, 10)
	hole := square(3, 3, 2, 2)
	poly := NewPolygon(1, outer, []Ring{hole})
	assert.True(t, poly.Valid())

	tooBig := square(-1, -1, 20, 20)
	bad := NewPolygon(2, outer, []Ring{tooBig})
	assert.False(t, bad.Valid())
}

func TestRectContains(t *testing.T) {
	r := Rect{Min: Point{0, 0}, Max: Point{10, 10}}
	assert.True(t, r.Contains(Point{5, 5}))
	assert.False(t, r.Contains(Point{11, 5}))
	assert.True(t, r.Intersects(Rect{Min: Point{5, 5}, Max: Point{15, 15}}))
	assert.False(t, r.Intersects(Rect{Min: Point{11, 11}, Max: Point{15, 15}}))
}
