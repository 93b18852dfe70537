package cerea

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cereagis/pkg/geo"
)

type contourFile struct {
	ContourTrueStr string `json:"contourTrueStr"`
}

// ParseContour reads contour.txt and returns the field boundary ring.
// The file is JSON carrying one flat "dx,dy,dz,dx,dy,dz,..." string; every
// triplet contributes one vertex offset from the universe center (dz is
// ignored, tracks and contours are planar).
func ParseContour(path string, center geo.Point) ([]geo.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contour: %w", err)
	}

	var cf contourFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("contour %s: %w", path, err)
	}

	coords := strings.Split(cf.ContourTrueStr, ",")
	ring := make([]geo.Point, 0, len(coords)/3)
	for i := 0; i+1 < len(coords); i += 3 {
		dx, err := strconv.ParseFloat(strings.TrimSpace(coords[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("contour %s vertex %d: %w", path, i/3, err)
		}
		dy, err := strconv.ParseFloat(strings.TrimSpace(coords[i+1]), 64)
		if err != nil {
			return nil, fmt.Errorf("contour %s vertex %d: %w", path, i/3, err)
		}
		ring = append(ring, geo.Point{X: center.X + dx, Y: center.Y + dy})
	}

	if len(ring) < 3 {
		return nil, fmt.Errorf("contour %s: only %d vertices", path, len(ring))
	}
	return ring, nil
}
