package geo

// GeoJSON builders for the map preview. Coordinates are projected from the
// working CRS to WGS84 on the way out, since that is what web maps expect.

func lonLatCoords(points []Point) [][]float64 {
	out := make([][]float64, 0, len(points))
	for _, p := range points {
		lon, lat := ToLonLat(p)
		out = append(out, []float64{lon, lat})
	}
	return out
}

// PolygonFeature builds a GeoJSON polygon feature from a ring. The ring is
// closed if the source left it open.
func PolygonFeature(ring []Point, props map[string]any) map[string]any {
	coords := lonLatCoords(ring)
	if len(coords) > 0 {
		first, last := coords[0], coords[len(coords)-1]
		if first[0] != last[0] || first[1] != last[1] {
			coords = append(coords, first)
		}
	}
	return map[string]any{
		"type":       "Feature",
		"properties": props,
		"geometry": map[string]any{
			"type":        "Polygon",
			"coordinates": [][][]float64{coords},
		},
	}
}

// LineFeature builds a GeoJSON linestring feature.
func LineFeature(points []Point, props map[string]any) map[string]any {
	return map[string]any{
		"type":       "Feature",
		"properties": props,
		"geometry": map[string]any{
			"type":        "LineString",
			"coordinates": lonLatCoords(points),
		},
	}
}

// PointFeature builds a GeoJSON point feature.
func PointFeature(p Point, props map[string]any) map[string]any {
	lon, lat := ToLonLat(p)
	return map[string]any{
		"type":       "Feature",
		"properties": props,
		"geometry": map[string]any{
			"type":        "Point",
			"coordinates": []float64{lon, lat},
		},
	}
}

// FeatureCollection wraps features in a GeoJSON feature collection.
func FeatureCollection(features []map[string]any) map[string]any {
	if features == nil {
		features = []map[string]any{}
	}
	return map[string]any{
		"type":     "FeatureCollection",
		"features": features,
	}
}
