package bundle

import (
	"fmt"
	"os"

	"cereagis/pkg/cerea"
	"cereagis/pkg/geo"
	"cereagis/pkg/shape"
)

func usable(path string, requireSidecars bool) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	if requireSidecars && len(cerea.MissingSidecars(path)) > 0 {
		return false
	}
	return true
}

// HasSources reports whether a field has anything to load or export.
func HasSources(mode, root, farm, field string) bool {
	contourSrc, patternsSrc := cerea.FieldSources(mode, root, farm, field)
	if mode == cerea.ModeCerea {
		return usable(contourSrc, false) || usable(patternsSrc, false)
	}
	return usable(contourSrc, true) || usable(patternsSrc, true)
}

// LoadField parses one field's sources into geometry records. Either part
// may be missing; a field with neither yields an empty result, not an
// error. center is only used in cerea mode.
func LoadField(mode, root, farm, field string, center geo.Point) (contour []geo.Point, tracks []shape.Track, err error) {
	contourSrc, patternsSrc := cerea.FieldSources(mode, root, farm, field)

	if mode == cerea.ModeCerea {
		if usable(contourSrc, false) {
			contour, err = cerea.ParseContour(contourSrc, center)
			if err != nil {
				return nil, nil, fmt.Errorf("field %s/%s: %w", farm, field, err)
			}
		}
		if usable(patternsSrc, false) {
			patterns, err := cerea.ParsePatterns(patternsSrc, center)
			if err != nil {
				return nil, nil, fmt.Errorf("field %s/%s: %w", farm, field, err)
			}
			for i, p := range patterns {
				tracks = append(tracks, shape.Track{ID: i, Name: p.Name, Points: p.Points})
			}
		}
		return contour, tracks, nil
	}

	// Shapefile re-import: files missing sidecars are treated as absent,
	// matching the validation warnings.
	if usable(contourSrc, true) {
		contour, err = shape.ReadContour(contourSrc)
		if err != nil {
			return nil, nil, fmt.Errorf("field %s/%s: %w", farm, field, err)
		}
	}
	if usable(patternsSrc, true) {
		tracks, err = shape.ReadTracks(patternsSrc)
		if err != nil {
			return nil, nil, fmt.Errorf("field %s/%s: %w", farm, field, err)
		}
	}
	return contour, tracks, nil
}
