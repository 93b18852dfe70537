package shape

import (
	"fmt"
	"strconv"
	"strings"

	shp "github.com/jonas-p/go-shp"

	"cereagis/pkg/geo"
)

// DBF attribute values come back padded with spaces or NULs.
func trimAttr(v string) string { return strings.Trim(v, "\x00 ") }

// Shapefiles in the exported layout are WGS84; files without a .prj are
// assumed WGS84 as well. Coordinates come back in the working CRS.

func utmPoints(pts []shp.Point) []geo.Point {
	out := make([]geo.Point, 0, len(pts))
	for _, p := range pts {
		out = append(out, geo.FromLonLat(p.X, p.Y))
	}
	return out
}

func shapePoints(s shp.Shape) []shp.Point {
	switch g := s.(type) {
	case *shp.Polygon:
		return g.Points
	case *shp.PolyLine:
		return g.Points
	case *shp.Point:
		return []shp.Point{*g}
	default:
		return nil
	}
}

// ReadContour reads the outer ring of a contour shapefile. Only the first
// feature is used; exported contours carry exactly one.
func ReadContour(path string) ([]geo.Point, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	if !r.Next() {
		return nil, fmt.Errorf("contour %s: no features", path)
	}
	_, s := r.Shape()
	pts := shapePoints(s)
	if len(pts) < 3 {
		return nil, fmt.Errorf("contour %s: degenerate ring", path)
	}
	ring := utmPoints(pts)
	// Drop the closing vertex; rings are stored open in memory.
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	return ring, nil
}

// ReadTracks reads a patterns shapefile back into track records. Names come
// from a NAME (or name) attribute when present and non-blank, otherwise
// "Track N"; IDs from an ID attribute, otherwise the feature index.
func ReadTracks(path string) ([]Track, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	nameCol, idCol := -1, -1
	for i, f := range r.Fields() {
		switch strings.ToLower(trimAttr(f.String())) {
		case "name":
			nameCol = i
		case "id":
			idCol = i
		}
	}

	var out []Track
	for r.Next() {
		n, s := r.Shape()
		pts := shapePoints(s)
		if len(pts) < 2 {
			continue
		}

		name := fmt.Sprintf("Track %d", n+1)
		if nameCol >= 0 {
			if v := trimAttr(r.ReadAttribute(n, nameCol)); v != "" {
				name = v
			}
		}
		id := n
		if idCol >= 0 {
			if v, err := strconv.Atoi(trimAttr(r.ReadAttribute(n, idCol))); err == nil {
				id = v
			}
		}
		out = append(out, Track{ID: id, Name: name, Points: utmPoints(pts)})
	}
	return out, nil
}
