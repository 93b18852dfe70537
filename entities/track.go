package entities

import "cereagis/pkg/geo"

// Track is one guidance line of a field. SourceIndex is the parse order of
// the bundle and stays fixed; Position is the user-chosen order, unique and
// contiguous (1..n) within a field. Geometry never changes after parse,
// only Name and Position do.
type Track struct {
	TrackID     uint   `gorm:"primaryKey" json:"track_id"`
	FieldID     uint   `json:"field_id" gorm:"index"`
	SessionID   string `json:"-" gorm:"index"`
	SourceIndex int    `json:"source_index"`
	Position    int    `json:"position"`
	Name        string `json:"name"`
	SourceName  string `json:"source_name"`

	Points []geo.Point `gorm:"serializer:json" json:"-"`
}
