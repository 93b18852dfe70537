package geo

import "github.com/wroge/wgs84"

// The bundle stores everything in ETRS89 / UTM zone 32N (EPSG:25832);
// shapefiles and map previews want WGS84 lon/lat (EPSG:4326).
var (
	utmToLonLat = wgs84.ETRS89UTM(32).To(wgs84.LonLat())
	lonLatToUTM = wgs84.LonLat().To(wgs84.ETRS89UTM(32))
)

// ToLonLat projects a working-CRS point to WGS84 longitude/latitude.
func ToLonLat(p Point) (lon, lat float64) {
	lon, lat, _ = utmToLonLat(p.X, p.Y, 0)
	return lon, lat
}

// FromLonLat projects WGS84 longitude/latitude into the working CRS.
func FromLonLat(lon, lat float64) Point {
	x, y, _ := lonLatToUTM(lon, lat, 0)
	return Point{X: x, Y: y}
}
