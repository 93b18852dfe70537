package serviceImp

import (
	"errors"
	"fmt"
	"strings"

	"cereagis/entities"
	"cereagis/pkg/track/repository"
	"cereagis/pkg/track/service"
)

type trackSvc struct{ repo repository.TrackRepository }

func New(repo repository.TrackRepository) service.TrackService { return &trackSvc{repo} }

func (s *trackSvc) Rename(id uint, clientID, name string) (*entities.Track, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("track name must not be blank")
	}
	t, err := s.repo.FindByID(id, clientID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Rename(t, name); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *trackSvc) Reorder(fieldID uint, clientID string, orderedIDs []uint) ([]entities.Track, error) {
	current, err := s.repo.ListByField(fieldID, clientID)
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, fmt.Errorf("field %d has no tracks", fieldID)
	}
	if len(orderedIDs) != len(current) {
		return nil, fmt.Errorf("order lists %d tracks, field has %d", len(orderedIDs), len(current))
	}

	known := make(map[uint]bool, len(current))
	for _, t := range current {
		known[t.TrackID] = true
	}
	seen := make(map[uint]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !known[id] {
			return nil, fmt.Errorf("track %d does not belong to field %d", id, fieldID)
		}
		if seen[id] {
			return nil, fmt.Errorf("track %d listed twice", id)
		}
		seen[id] = true
	}

	if err := s.repo.Reorder(fieldID, orderedIDs); err != nil {
		return nil, err
	}
	return s.repo.ListByField(fieldID, clientID)
}
