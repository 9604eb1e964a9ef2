package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arl/go-nest/geom"
	"github.com/arl/go-nest/ingest"
	"github.com/arl/go-nest/pack"
)

func square(id int, side float64) geom.PolygonWithHoles {
	ring, _ := geom.NewRing([]geom.Point{
		{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side},
	})
	return geom.NewPolygon(id, ring, nil)
}

func TestWriteSheetProducesValidPath(t *testing.T) {
	sheet := Sheet{
		Rect: geom.Rect{Min: geom.Point{}, Max: geom.Point{X: 10, Y: 10}},
		Parts: map[int]geom.PolygonWithHoles{
			1: square(1, 5),
		},
		Elements: map[int]ingest.Element{
			1: {Tag: "path", Attrs: map[string]string{"fill": "red"}},
		},
	}
	placements := []pack.Placement{
		{
			PolygonID:  1,
			SheetIndex: 0,
			Transform: pack.Transform{
				Translate: geom.Point{X: 2, Y: 2},
				RotateRad: 0,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSheet(&buf, sheet, placements))

	out := buf.String()
	assert.True(t, strings.Contains(out, "<svg"))
	assert.True(t, strings.Contains(out, "translate("))
	assert.True(t, strings.Contains(out, `fill="red"`))
	assert.True(t, strings.Contains(out, "fill-rule=\"evenodd\""))
}

func TestWriteSheetUnknownPolygonErrors(t *testing.T) {
	sheet := Sheet{Rect: geom.Rect{Max: geom.Point{X: 1, Y: 1}}, Parts: map[int]geom.PolygonWithHoles{}}
	placements := []pack.Placement{{PolygonID: 99}}

	var buf bytes.Buffer
	err := WriteSheet(&buf, sheet, placements)
	assert.Error(t, err)
}
