package cerea

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cereagis/pkg/geo"
)

// Pattern is one guidance track parsed from patterns.txt, in file order.
type Pattern struct {
	Name   string
	Points []geo.Point
}

// ParsePatterns reads patterns.txt and returns the tracks of a field.
//
// Supported row layouts:
//   - one segment:  id,mode,name,x1,y1,z1,x2,y2,z2
//   - polyline row: id,mode,name,x1,y1,z1,...,xn,yn,zn
//   - multi-row polyline with a repeated name; rows merge in file order
//
// Rows with fewer than 9 columns are skipped, as are rows that yield fewer
// than two usable points. When consecutive rows of one track share the
// connecting vertex, the duplicate is dropped.
func ParsePatterns(path string, center geo.Point) ([]Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read patterns: %w", err)
	}
	defer f.Close()

	byName := map[string][]geo.Point{}
	var order []string

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		parts := strings.Split(strings.TrimSpace(sc.Text()), ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if len(parts) < 9 {
			continue
		}

		name := parts[2]
		var rowPoints []geo.Point

		// Coordinates start at column 3 as repeating x,y,z triplets.
		for i := 3; i+2 < len(parts); i += 3 {
			dx, errX := strconv.ParseFloat(parts[i], 64)
			dy, errY := strconv.ParseFloat(parts[i+1], 64)
			if errX != nil || errY != nil {
				continue
			}
			rowPoints = append(rowPoints, geo.Point{X: center.X + dx, Y: center.Y + dy})
		}
		if len(rowPoints) < 2 {
			continue
		}

		prev, seen := byName[name]
		if !seen {
			order = append(order, name)
		}
		if len(prev) > 0 && prev[len(prev)-1] == rowPoints[0] {
			rowPoints = rowPoints[1:]
		}
		byName[name] = append(prev, rowPoints...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read patterns %s: %w", path, err)
	}

	out := make([]Pattern, 0, len(order))
	for _, name := range order {
		if pts := byName[name]; len(pts) >= 2 {
			out = append(out, Pattern{Name: name, Points: pts})
		}
	}
	return out, nil
}
