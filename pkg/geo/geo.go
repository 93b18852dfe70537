package geo

import "math"

// Point is a planar coordinate in the bundle's working CRS (EPSG:25832,
// ETRS89 / UTM zone 32N). Values are meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Length returns the planar length of a polyline in meters.
func Length(points []Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += math.Hypot(points[i].X-points[i-1].X, points[i].Y-points[i-1].Y)
	}
	return total
}

// signedArea is positive for counter-clockwise rings (shoelace).
func signedArea(ring []Point) float64 {
	sum := 0.0
	for i := 0; i < len(ring); i++ {
		j := (i + 1) % len(ring)
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return sum / 2
}

// Clockwise returns the ring in clockwise order. Shapefile outer rings
// must be clockwise; the parsers make no promise about winding.
func Clockwise(ring []Point) []Point {
	if signedArea(ring) <= 0 {
		return ring
	}
	out := make([]Point, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

// Centroid of a polygon ring; falls back to the vertex mean for
// degenerate rings and open polylines.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	if len(points) >= 3 {
		a := signedArea(points)
		if math.Abs(a) > 1e-9 {
			var cx, cy float64
			for i := 0; i < len(points); i++ {
				j := (i + 1) % len(points)
				cross := points[i].X*points[j].Y - points[j].X*points[i].Y
				cx += (points[i].X + points[j].X) * cross
				cy += (points[i].Y + points[j].Y) * cross
			}
			return Point{X: cx / (6 * a), Y: cy / (6 * a)}
		}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point{X: sx / n, Y: sy / n}
}

// Midpoint returns the point halfway along a polyline by arc length.
// Used to place track number markers on the preview map.
func Midpoint(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	if len(points) == 1 {
		return points[0]
	}
	half := Length(points) / 2
	walked := 0.0
	for i := 1; i < len(points); i++ {
		seg := math.Hypot(points[i].X-points[i-1].X, points[i].Y-points[i-1].Y)
		if walked+seg >= half && seg > 0 {
			t := (half - walked) / seg
			return Point{
				X: points[i-1].X + t*(points[i].X-points[i-1].X),
				Y: points[i-1].Y + t*(points[i].Y-points[i-1].Y),
			}
		}
		walked += seg
	}
	return points[len(points)-1]
}
