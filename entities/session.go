package entities

import "time"

// ImportSession is one uploaded bundle. The extracted files stay on disk
// under RootPath for the session's lifetime so fields can be reset to
// their parsed state; a new upload by the same client replaces the
// session and its working directory.
type ImportSession struct {
	ID       string  `gorm:"primaryKey" json:"id"`
	ClientID string  `json:"client_id" gorm:"index"`
	Mode     string  `json:"mode"` // cerea|shapefile
	WorkDir  string  `json:"-"`    // extraction dir, removed with the session
	RootPath string  `json:"-"`    // resolved bundle root inside WorkDir
	CenterX  float64 `json:"center_x"`
	CenterY  float64 `json:"center_y"`

	Farms []Farm `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"farms,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Farm struct {
	FarmID    uint   `gorm:"primaryKey" json:"farm_id"`
	SessionID string `json:"session_id" gorm:"index"`
	Name      string `json:"name"`

	Fields []Field `gorm:"foreignKey:FarmID;constraint:OnDelete:CASCADE" json:"fields,omitempty"`
}
