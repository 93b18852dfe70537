package repository

import "cereagis/entities"

type FieldRepository interface {
	// FindByID loads a field with its tracks in position order, scoped to
	// the owning client.
	FindByID(id uint, clientID string) (*entities.Field, error)
	ListBySession(sessionID, clientID string) ([]entities.Field, error)
	Save(f *entities.Field) error
	// ReplaceTracks swaps a field's tracks for a freshly parsed set and
	// clears the dirty flag, in one transaction.
	ReplaceTracks(f *entities.Field, tracks []entities.Track) error
}
