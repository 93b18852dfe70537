package repository

import "cereagis/entities"

type BundleRepository interface {
	CreateSession(s *entities.ImportSession) error
	// FindSession loads the bare session row, scoped to its owning client.
	FindSession(id, clientID string) (*entities.ImportSession, error)
	// SessionSummary preloads farms and fields without track geometry.
	SessionSummary(id, clientID string) (*entities.ImportSession, error)
	// SessionTree preloads the full tree with tracks in position order.
	SessionTree(id, clientID string) (*entities.ImportSession, error)
	DeleteSession(s *entities.ImportSession) error
	// PurgeClient removes every session of a client and returns their
	// working directories so the caller can delete them from disk.
	PurgeClient(clientID string) ([]string, error)
	ClearDirty(sessionID string) error
}
