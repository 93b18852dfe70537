package service

import "cereagis/entities"

type TrackService interface {
	// Rename sets a track's display name; blank names are rejected.
	Rename(id uint, clientID, name string) (*entities.Track, error)
	// Reorder applies a complete new order to a field's tracks. orderedIDs
	// must list every track of the field exactly once; positions become
	// 1..n in the given order.
	Reorder(fieldID uint, clientID string, orderedIDs []uint) ([]entities.Track, error)
}
