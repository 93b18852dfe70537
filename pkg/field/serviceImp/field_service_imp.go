package serviceImp

import (
	"fmt"
	"os"

	"cereagis/entities"
	"cereagis/pkg/bundle"
	bundleRepo "cereagis/pkg/bundle/repository"
	"cereagis/pkg/field/repository"
	"cereagis/pkg/field/service"
	"cereagis/pkg/geo"
	"cereagis/pkg/shape"
)

type fieldSvc struct {
	repo     repository.FieldRepository
	sessions bundleRepo.BundleRepository
}

func New(repo repository.FieldRepository, sessions bundleRepo.BundleRepository) service.FieldService {
	return &fieldSvc{repo: repo, sessions: sessions}
}

func (s *fieldSvc) List(sessionID, clientID string) ([]entities.Field, error) {
	return s.repo.ListBySession(sessionID, clientID)
}

func (s *fieldSvc) Detail(id uint, clientID string) (map[string]any, error) {
	f, err := s.repo.FindByID(id, clientID)
	if err != nil {
		return nil, err
	}

	var features []map[string]any
	if len(f.Contour) > 0 {
		features = append(features, geo.PolygonFeature(f.Contour, map[string]any{
			"kind": "contour",
			"name": f.Name,
		}))
	}
	for i, t := range f.Tracks {
		order := i + 1
		features = append(features, geo.LineFeature(t.Points, map[string]any{
			"kind":     "track",
			"track_id": t.TrackID,
			"name":     t.Name,
			"order":    order,
		}))
		features = append(features, geo.PointFeature(geo.Midpoint(t.Points), map[string]any{
			"kind":     "marker",
			"track_id": t.TrackID,
			"order":    order,
		}))
	}

	center := previewCenter(f)
	lon, lat := geo.ToLonLat(center)

	return map[string]any{
		"field":   f,
		"center":  []float64{lon, lat},
		"geojson": geo.FeatureCollection(features),
	}, nil
}

// previewCenter picks the map center: contour centroid when there is one,
// otherwise the mean of all track vertices.
func previewCenter(f *entities.Field) geo.Point {
	if len(f.Contour) > 0 {
		return geo.Centroid(f.Contour)
	}
	var all []geo.Point
	for _, t := range f.Tracks {
		all = append(all, t.Points...)
	}
	return geo.Centroid(all)
}

func (s *fieldSvc) Reset(id uint, clientID string) (*entities.Field, error) {
	f, err := s.repo.FindByID(id, clientID)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.FindSession(f.SessionID, clientID)
	if err != nil {
		return nil, err
	}

	center := geo.Point{X: session.CenterX, Y: session.CenterY}
	contour, parsed, err := bundle.LoadField(session.Mode, session.RootPath, f.FarmName, f.Name, center)
	if err != nil {
		return nil, fmt.Errorf("reset field %d: %w", id, err)
	}

	tracks := make([]entities.Track, 0, len(parsed))
	for i, t := range parsed {
		tracks = append(tracks, entities.Track{
			SourceIndex: t.ID,
			Position:    i + 1,
			Name:        t.Name,
			SourceName:  t.Name,
			Points:      t.Points,
		})
	}
	f.Contour = contour
	f.Tracks = nil
	if err := s.repo.Save(f); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceTracks(f, tracks); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fieldSvc) ExportZip(id uint, clientID string) ([]byte, error) {
	f, err := s.repo.FindByID(id, clientID)
	if err != nil {
		return nil, err
	}
	if len(f.Contour) == 0 && len(f.Tracks) == 0 {
		return nil, fmt.Errorf("field %s has nothing to export", f.Name)
	}

	exportDir, err := os.MkdirTemp("", "cereagis-field-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(exportDir)

	tracks := make([]shape.Track, 0, len(f.Tracks))
	for _, t := range f.Tracks {
		tracks = append(tracks, shape.Track{ID: t.SourceIndex, Name: t.Name, Points: t.Points})
	}
	if err := shape.ExportField(exportDir, f.FarmName, f.Name, f.Contour, tracks); err != nil {
		return nil, err
	}

	data, err := bundle.ZipDir(exportDir)
	if err != nil {
		return nil, err
	}
	f.Dirty = false
	if err := s.repo.Save(f); err != nil {
		return nil, err
	}
	return data, nil
}
