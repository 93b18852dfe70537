package cerea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cereagis/pkg/geo"
)

func TestParseContour(t *testing.T) {
	center := geo.Point{X: 1000, Y: 2000}

	t.Run("offsets applied to center", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "contour.txt",
			`{"contourTrueStr": "0,0,0,100,0,1.5,100,100,0,0,100,-2"}`)
		ring, err := ParseContour(path, center)
		require.NoError(t, err)
		require.Len(t, ring, 4)
		assert.Equal(t, geo.Point{X: 1000, Y: 2000}, ring[0])
		assert.Equal(t, geo.Point{X: 1100, Y: 2000}, ring[1])
		assert.Equal(t, geo.Point{X: 1100, Y: 2100}, ring[2])
		assert.Equal(t, geo.Point{X: 1000, Y: 2100}, ring[3])
	})

	t.Run("z values ignored", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "contour.txt",
			`{"contourTrueStr": "1,2,99,3,4,-99,5,6,0"}`)
		ring, err := ParseContour(path, geo.Point{})
		require.NoError(t, err)
		require.Len(t, ring, 3)
		assert.Equal(t, geo.Point{X: 3, Y: 4}, ring[1])
	})

	t.Run("not json", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "contour.txt", "not json at all")
		_, err := ParseContour(path, center)
		assert.Error(t, err)
	})

	t.Run("bad coordinate", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "contour.txt",
			`{"contourTrueStr": "0,0,0,abc,0,0,1,1,0"}`)
		_, err := ParseContour(path, center)
		assert.Error(t, err)
	})

	t.Run("too few vertices", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "contour.txt",
			`{"contourTrueStr": "0,0,0,1,1,0"}`)
		_, err := ParseContour(path, center)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseContour(t.TempDir()+"/contour.txt", center)
		assert.Error(t, err)
	})
}
