// Package cerea parses the raw text files of a Cerea field-survey export.
// All coordinates in the export are offsets relative to a single "universe
// center" in EPSG:25832; the parsers resolve them to absolute coordinates.
package cerea

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"cereagis/pkg/geo"
)

// ReadCenter reads universe.txt and returns the universe center. The center
// is the last non-blank line of the file, encoded as "x,y".
func ReadCenter(path string) (geo.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geo.Point{}, fmt.Errorf("read universe: %w", err)
	}

	last := ""
	for _, line := range strings.Split(string(data), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			last = s
		}
	}
	if last == "" {
		return geo.Point{}, fmt.Errorf("universe file %s is empty", path)
	}

	parts := strings.Split(last, ",")
	if len(parts) < 2 {
		return geo.Point{}, fmt.Errorf("universe center line %q: want x,y", last)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("universe center x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("universe center y: %w", err)
	}
	return geo.Point{X: x, Y: y}, nil
}
