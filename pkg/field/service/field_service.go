package service

import "cereagis/entities"

type FieldService interface {
	List(sessionID, clientID string) ([]entities.Field, error)
	// Detail returns the map-preview payload of a field: metadata plus a
	// GeoJSON feature collection in WGS84 with contour, ordered tracks
	// and numbered midpoint markers.
	Detail(id uint, clientID string) (map[string]any, error)
	// Reset re-parses the field from its bundle sources, dropping edits.
	Reset(id uint, clientID string) (*entities.Field, error)
	// ExportZip exports just this field as a zipped shapefile set.
	ExportZip(id uint, clientID string) ([]byte, error)
}
