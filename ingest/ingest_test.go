package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewBox(t *testing.T) {
	doc := `<svg viewBox="0 0 300 200"></svg>`
	r, err := ParseViewBox(doc)
	require.NoError(t, err)
	assert.Equal(t, 300.0, r.Width())
	assert.Equal(t, 200.0, r.Height())
}

func TestParseViewBoxMissing(t *testing.T) {
	doc := `<svg></svg>`
	_, err := ParseViewBox(doc)
	assert.Error(t, err)
}

func TestParseShapesSquare(t *testing.T) {
	doc := `<svg viewBox="0 0 100 100"><rect x="10" y="10" width="50" height="50" fill="#ff0000"/></svg>`
	polys, elems, err := ParseShapes(doc, 1, 0)
	require.NoError(t, err)
	require.Len(t, polys, 1)
	require.Len(t, elems, 1)
	assert.Equal(t, "#ff0000", elems[0].Attrs["fill"])
	// Conservative dilation means the discretized square is at least as
	// large as the nominal 50x50.
	assert.Greater(t, polys[0].Area(), 2500.0)
}

func TestParseShapesEmptyDocument(t *testing.T) {
	doc := `<svg viewBox="0 0 100 100"></svg>`
	polys, elems, err := ParseShapes(doc, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, polys)
	assert.Empty(t, elems)
}

func TestBlankSheet(t *testing.T) {
	doc := BlankSheet(100, 50)
	r, err := ParseViewBox(doc)
	require.NoError(t, err)
	assert.Equal(t, 100.0, r.Width())
	assert.Equal(t, 50.0, r.Height())
}
