package shape

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cereagis/pkg/geo"
)

func sampleTracks() []Track {
	return []Track{
		{ID: 0, Name: "AB 1", Points: []geo.Point{{X: 606000, Y: 5796000}, {X: 606100, Y: 5796000}}},
		{ID: 1, Name: "AB 2", Points: []geo.Point{{X: 606000, Y: 5796020}, {X: 606100, Y: 5796020}}},
		{ID: 2, Name: "Headland", Points: []geo.Point{{X: 606000, Y: 5796040}, {X: 606050, Y: 5796060}, {X: 606100, Y: 5796040}}},
	}
}

func sampleContour() []geo.Point {
	return []geo.Point{
		{X: 605950, Y: 5795950}, {X: 606150, Y: 5795950},
		{X: 606150, Y: 5796100}, {X: 605950, Y: 5796100},
	}
}

func TestWriteReadTracks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Field1_patterns.shp")
	require.NoError(t, WriteTracks(path, sampleTracks()))

	for _, ext := range []string{".shp", ".shx", ".dbf", ".prj"} {
		_, err := os.Stat(path[:len(path)-4] + ext)
		assert.NoError(t, err, ext)
	}

	got, err := ReadTracks(path)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, want := range sampleTracks() {
		assert.Equal(t, want.ID, got[i].ID)
		assert.Equal(t, want.Name, got[i].Name)
		require.Len(t, got[i].Points, len(want.Points))
		for j, p := range want.Points {
			assert.InDelta(t, p.X, got[i].Points[j].X, 0.01)
			assert.InDelta(t, p.Y, got[i].Points[j].Y, 0.01)
		}
	}
}

func TestWriteReadContour(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Field1_contour.shp")
	require.NoError(t, WriteContour(path, "Field1", sampleContour()))

	ring, err := ReadContour(path)
	require.NoError(t, err)
	require.Len(t, ring, 4)

	// Winding may flip on export; compare as a set of vertices.
	want := map[[2]int]bool{}
	for _, p := range sampleContour() {
		want[[2]int{int(p.X + 0.5), int(p.Y + 0.5)}] = true
	}
	for _, p := range ring {
		assert.True(t, want[[2]int{int(p.X + 0.5), int(p.Y + 0.5)}], "unexpected vertex %+v", p)
	}
}

func TestExportFieldLayout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ExportField(dir, "FarmA", "Field1", sampleContour(), sampleTracks()))

	assert.FileExists(t, filepath.Join(dir, "FarmA", "contours", "Field1_contour.shp"))
	assert.FileExists(t, filepath.Join(dir, "FarmA", "patterns", "Field1_patterns.shp"))

	// A field without tracks only gets a contour.
	require.NoError(t, ExportField(dir, "FarmA", "Field2", sampleContour(), nil))
	assert.FileExists(t, filepath.Join(dir, "FarmA", "contours", "Field2_contour.shp"))
	assert.NoFileExists(t, filepath.Join(dir, "FarmA", "patterns", "Field2_patterns.shp"))
}

func TestReport(t *testing.T) {
	data, err := Report([]FarmSummary{
		{
			Name: "FarmA",
			Fields: []FieldSummary{
				{Name: "Field1", HasContour: true, Tracks: sampleTracks()},
				{Name: "Field2"},
			},
		},
		{Name: "Weird/Name:That[Is]Way*Too?Long\\For One Sheet"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Len(t, f.GetSheetList(), 2)
	assert.Equal(t, "FarmA", f.GetSheetList()[0])

	name, err := f.GetCellValue("FarmA", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Field1", name)
	count, err := f.GetCellValue("FarmA", "C2")
	require.NoError(t, err)
	assert.Equal(t, "3", count)
	order, err := f.GetCellValue("FarmA", "E2")
	require.NoError(t, err)
	assert.Equal(t, "AB 1, AB 2, Headland", order)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Farm 1", sheetName("   ", 0))
	assert.Equal(t, "a_b", sheetName("a/b", 0))
	assert.Len(t, sheetName("0123456789012345678901234567890123456789", 0), 31)
}
