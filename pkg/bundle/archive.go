// Package bundle handles whole-bundle concerns: zip extraction and
// packaging, and loading a field's geometry from either import mode.
package bundle

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxExtractBytes caps the decompressed size of an upload; uploads are
// user-provided and zip bombs are cheap to send.
const maxExtractBytes = 512 << 20

// ExtractZip unpacks an uploaded bundle below destDir. Entry paths are
// confined to destDir; entries escaping it (zip-slip) fail the import.
func ExtractZip(data []byte, destDir string) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("not a zip archive: %w", err)
	}

	var written int64
	for _, f := range zr.File {
		rel := filepath.Clean(f.Name)
		if rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
			return fmt.Errorf("unsafe zip entry path %q", f.Name)
		}
		target := filepath.Join(destDir, rel)

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}

		src, err := f.Open()
		if err != nil {
			return fmt.Errorf("zip entry %s: %w", f.Name, err)
		}
		dst, err := os.Create(target)
		if err != nil {
			src.Close()
			return err
		}
		n, err := io.Copy(dst, io.LimitReader(src, maxExtractBytes-written+1))
		src.Close()
		dst.Close()
		if err != nil {
			return fmt.Errorf("zip entry %s: %w", f.Name, err)
		}
		written += n
		if written > maxExtractBytes {
			return fmt.Errorf("bundle exceeds %d bytes uncompressed", int64(maxExtractBytes))
		}
	}
	return nil
}

// ZipDir packs every file below root into an in-memory zip, with paths
// relative to root.
func ZipDir(root string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		zw.Close()
		return nil, fmt.Errorf("zip %s: %w", root, err)
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
