package entities

import (
	"time"

	"cereagis/pkg/geo"
)

// Field is one surveyed field: an optional contour ring plus its guidance
// tracks. Geometry is stored in the working CRS (EPSG:25832) and only
// reprojected on preview/export. Dirty marks fields edited since parse or
// last export.
type Field struct {
	FieldID   uint   `gorm:"primaryKey" json:"field_id"`
	FarmID    uint   `json:"farm_id" gorm:"index"`
	SessionID string `json:"session_id" gorm:"index"`
	FarmName  string `json:"farm_name"`
	Name      string `json:"name"`

	Contour []geo.Point `gorm:"serializer:json" json:"-"`
	Dirty   bool        `json:"dirty"`

	Tracks []Track `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE" json:"tracks,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
