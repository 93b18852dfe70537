// Package shape reads and writes the shapefile side of the converter:
// per-field contour polygons and pattern polylines, plus the export
// summary workbook.
package shape

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	shp "github.com/jonas-p/go-shp"

	"cereagis/pkg/geo"
)

// Track is the in-memory record written to (and read from) a patterns
// shapefile. ID is the parse index of the source bundle, the slice order
// is the user-chosen track order.
type Track struct {
	ID     int
	Name   string
	Points []geo.Point
}

// WGS84 .prj body. go-shp writes .shp/.shx/.dbf but no projection
// sidecar, so it is written alongside.
const wgs84PRJ = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`

func writePRJ(shpPath string) error {
	base := strings.TrimSuffix(shpPath, filepath.Ext(shpPath))
	return os.WriteFile(base+".prj", []byte(wgs84PRJ), 0o644)
}

func lonLatShpPoints(points []geo.Point) []shp.Point {
	out := make([]shp.Point, 0, len(points))
	for _, p := range points {
		lon, lat := geo.ToLonLat(p)
		out = append(out, shp.Point{X: lon, Y: lat})
	}
	return out
}

// WriteContour writes a field boundary as a one-feature polygon shapefile
// in WGS84. The ring is closed and wound clockwise as the format requires.
// The NAME attribute keeps the .dbf present; readers expect the full
// sidecar set.
func WriteContour(path, name string, ring []geo.Point) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	ring = geo.Clockwise(ring)
	pts := lonLatShpPoints(ring)
	if len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}

	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w.SetFields([]shp.Field{shp.StringField("NAME", 100)})
	poly := shp.Polygon(*shp.NewPolyLine([][]shp.Point{pts}))
	w.Write(&poly)
	if err := w.WriteAttribute(0, 0, name); err != nil {
		w.Close()
		return fmt.Errorf("attribute NAME: %w", err)
	}
	w.Close()
	return writePRJ(path)
}

// WriteTracks writes the pattern polylines of a field as a polyline
// shapefile in WGS84. Features appear in slice order, which is the order
// the user arranged; the attribute table carries ID and NAME per track.
func WriteTracks(path string, tracks []Track) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	w, err := shp.Create(path, shp.POLYLINE)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w.SetFields([]shp.Field{
		shp.NumberField("ID", 10),
		shp.StringField("NAME", 100),
	})
	for n, t := range tracks {
		line := shp.NewPolyLine([][]shp.Point{lonLatShpPoints(t.Points)})
		w.Write(line)
		if err := w.WriteAttribute(n, 0, t.ID); err != nil {
			w.Close()
			return fmt.Errorf("attribute ID row %d: %w", n, err)
		}
		if err := w.WriteAttribute(n, 1, t.Name); err != nil {
			w.Close()
			return fmt.Errorf("attribute NAME row %d: %w", n, err)
		}
	}
	w.Close()
	return writePRJ(path)
}

// ExportField writes the shapefiles of one field below outputDir using the
// exported bundle layout: <farm>/contours/<field>_contour.shp and
// <farm>/patterns/<field>_patterns.shp. Either part may be absent.
func ExportField(outputDir, farm, field string, contour []geo.Point, tracks []Track) error {
	farmDir := filepath.Join(outputDir, farm)
	if len(contour) > 0 {
		path := filepath.Join(farmDir, "contours", field+"_contour.shp")
		if err := WriteContour(path, field, contour); err != nil {
			return fmt.Errorf("export contour %s/%s: %w", farm, field, err)
		}
	}
	if len(tracks) > 0 {
		path := filepath.Join(farmDir, "patterns", field+"_patterns.shp")
		if err := WriteTracks(path, tracks); err != nil {
			return fmt.Errorf("export patterns %s/%s: %w", farm, field, err)
		}
	}
	return nil
}
