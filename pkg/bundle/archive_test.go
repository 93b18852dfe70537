package bundle

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipRoundTrip(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "FarmA", "Field1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "universe.txt"), []byte("1,2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "FarmA", "Field1", "contour.txt"), []byte("{}"), 0o644))

	data, err := ZipDir(src)
	require.NoError(t, err)

	dst := t.TempDir()
	require.NoError(t, ExtractZip(data, dst))

	got, err := os.ReadFile(filepath.Join(dst, "universe.txt"))
	require.NoError(t, err)
	assert.Equal(t, "1,2\n", string(got))
	assert.FileExists(t, filepath.Join(dst, "FarmA", "Field1", "contour.txt"))
}

func TestExtractZipRejectsGarbage(t *testing.T) {
	err := ExtractZip([]byte("this is not a zip"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a zip archive")
}

func TestExtractZipRejectsSlip(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("../evil.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("boom"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	dst := t.TempDir()
	err = ExtractZip(buf.Bytes(), dst)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dst), "evil.txt"))
}
