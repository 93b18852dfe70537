package cerea

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCenter(t *testing.T) {
	t.Run("last line wins", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "universe.txt",
			"some header\nother junk\n606000.5,5796000.25\n")
		c, err := ReadCenter(path)
		require.NoError(t, err)
		assert.Equal(t, 606000.5, c.X)
		assert.Equal(t, 5796000.25, c.Y)
	})

	t.Run("trailing blank lines tolerated", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "universe.txt", "606000,5796000\n\n\n")
		c, err := ReadCenter(path)
		require.NoError(t, err)
		assert.Equal(t, 606000.0, c.X)
	})

	t.Run("spaces around values", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "universe.txt", " 606000 , 5796000 \n")
		c, err := ReadCenter(path)
		require.NoError(t, err)
		assert.Equal(t, 5796000.0, c.Y)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "universe.txt", "")
		_, err := ReadCenter(path)
		assert.Error(t, err)
	})

	t.Run("not coordinates", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "universe.txt", "hello world\n")
		_, err := ReadCenter(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadCenter(filepath.Join(t.TempDir(), "universe.txt"))
		assert.Error(t, err)
	})
}
