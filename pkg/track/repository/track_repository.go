package repository

import "cereagis/entities"

type TrackRepository interface {
	// FindByID loads a track scoped to the owning client.
	FindByID(id uint, clientID string) (*entities.Track, error)
	ListByField(fieldID uint, clientID string) ([]entities.Track, error)
	Rename(t *entities.Track, name string) error
	// Reorder assigns positions 1..n following orderedIDs and marks the
	// field dirty, in one transaction.
	Reorder(fieldID uint, orderedIDs []uint) error
}
