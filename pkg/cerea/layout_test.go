package cerea

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
}

func TestResolveImportRoot(t *testing.T) {
	t.Run("root is the extract dir", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "universe.txt", "0,0\n")
		writeFile(t, dir, "FarmA/Field1/contour.txt", "{}")
		assert.Equal(t, dir, ResolveImportRoot(dir, ModeCerea))
	})

	t.Run("zip wrapper folder", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "export/universe.txt", "0,0\n")
		writeFile(t, dir, "export/FarmA/Field1/patterns.txt", "")
		assert.Equal(t, filepath.Join(dir, "export"), ResolveImportRoot(dir, ModeCerea))
	})

	t.Run("universe above the farm wrapper", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "universe.txt", "0,0\n")
		writeFile(t, dir, "Farms/FarmA/Field1/contour.txt", "{}")
		got := ResolveImportRoot(dir, ModeCerea)
		assert.Equal(t, filepath.Join(dir, "Farms"), got)
		// universe.txt then resolves through the parent.
		assert.Equal(t, filepath.Join(dir, "universe.txt"), ResolveUniversePath(got))
	})

	t.Run("shapefile layout", func(t *testing.T) {
		dir := t.TempDir()
		mkdirs(t, dir, "out/FarmA/patterns", "out/FarmA/contours")
		assert.Equal(t, filepath.Join(dir, "out"), ResolveImportRoot(dir, ModeShapefile))
	})

	t.Run("nothing recognizable falls back to extract dir", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "readme.txt", "hi")
		assert.Equal(t, dir, ResolveImportRoot(dir, ModeCerea))
	})
}

func TestValidateCerea(t *testing.T) {
	t.Run("empty root is fatal", func(t *testing.T) {
		rep := Validate(ModeCerea, t.TempDir())
		assert.NotEmpty(t, rep.Issues)
		assert.Equal(t, 0, rep.Stats.Farms)
	})

	t.Run("missing universe is fatal", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "FarmA/Field1/contour.txt", "{}")
		rep := Validate(ModeCerea, dir)
		require.Len(t, rep.Issues, 1)
		assert.Contains(t, rep.Issues[0], "universe.txt")
	})

	t.Run("counts and warnings", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "universe.txt", "0,0\n")
		writeFile(t, dir, "FarmA/Field1/contour.txt", "{}")
		writeFile(t, dir, "FarmA/Field1/patterns.txt", "")
		writeFile(t, dir, "FarmA/Field2/patterns.txt", "")
		mkdirs(t, dir, "FarmB/Empty", "FarmC")

		rep := Validate(ModeCerea, dir)
		assert.Empty(t, rep.Issues)
		assert.Equal(t, 3, rep.Stats.Farms)
		assert.Equal(t, 3, rep.Stats.Fields)
		assert.Contains(t, rep.Warnings, "Missing optional contour.txt: FarmA/Field2")
		assert.Contains(t, rep.Warnings, "No field folders in farm: FarmC")
	})
}

func TestValidateShapefile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "FarmA/patterns/Field1_patterns.shp", "x")
	writeFile(t, dir, "FarmA/patterns/Field1_patterns.shx", "x")
	mkdirs(t, dir, "FarmB")

	rep := Validate(ModeShapefile, dir)
	assert.Empty(t, rep.Issues)
	assert.Equal(t, 2, rep.Stats.Farms)
	assert.Equal(t, 1, rep.Stats.Fields)

	joined := ""
	for _, w := range rep.Warnings {
		joined += w + "\n"
	}
	assert.Contains(t, joined, "Missing sidecar(s) for patterns shapefile")
	assert.Contains(t, joined, ".dbf")
	assert.Contains(t, joined, "No field shapefiles found in farm: FarmB")
}

func TestMissingSidecars(t *testing.T) {
	dir := t.TempDir()
	shp := writeFile(t, dir, "f_patterns.shp", "x")
	writeFile(t, dir, "f_patterns.dbf", "x")
	assert.Equal(t, []string{".shx", ".prj"}, MissingSidecars(shp))
}

func TestExportedFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "patterns/B_patterns.shp", "x")
	writeFile(t, dir, "patterns/A_patterns.shp", "x")
	writeFile(t, dir, "contours/A_contour.shp", "x")
	writeFile(t, dir, "contours/C_contour.shp", "x")
	assert.Equal(t, []string{"A", "B", "C"}, ExportedFields(dir))
}

func TestFieldSources(t *testing.T) {
	c, p := FieldSources(ModeCerea, "/root", "FarmA", "Field1")
	assert.Equal(t, filepath.Join("/root", "FarmA", "Field1", "contour.txt"), c)
	assert.Equal(t, filepath.Join("/root", "FarmA", "Field1", "patterns.txt"), p)

	c, p = FieldSources(ModeShapefile, "/root", "FarmA", "Field1")
	assert.Equal(t, filepath.Join("/root", "FarmA", "contours", "Field1_contour.shp"), c)
	assert.Equal(t, filepath.Join("/root", "FarmA", "patterns", "Field1_patterns.shp"), p)
}
