package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cereagis/database"
	"cereagis/entities"
	"cereagis/pkg/geo"
	"cereagis/pkg/track/repositoryImp"
	"cereagis/pkg/track/service"
)

func seed(t *testing.T) (*gorm.DB, service.TrackService, entities.Field) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))

	session := entities.ImportSession{ID: "sess-1", ClientID: "client1", Mode: "cerea"}
	require.NoError(t, db.Create(&session).Error)

	farm := entities.Farm{SessionID: session.ID, Name: "FarmA"}
	require.NoError(t, db.Create(&farm).Error)

	field := entities.Field{
		FarmID:    farm.FarmID,
		SessionID: session.ID,
		FarmName:  farm.Name,
		Name:      "Field1",
	}
	require.NoError(t, db.Create(&field).Error)

	for i, name := range []string{"AB 1", "AB 2", "AB 3"} {
		track := entities.Track{
			FieldID:     field.FieldID,
			SessionID:   session.ID,
			SourceIndex: i,
			Position:    i + 1,
			Name:        name,
			SourceName:  name,
			Points:      []geo.Point{{X: float64(i), Y: 0}, {X: float64(i), Y: 100}},
		}
		require.NoError(t, db.Create(&track).Error)
	}

	return db, New(repositoryImp.New(db)), field
}

func trackIDs(t *testing.T, db *gorm.DB, fieldID uint) []uint {
	t.Helper()
	var tracks []entities.Track
	require.NoError(t, db.Where("field_id = ?", fieldID).Order("position ASC").Find(&tracks).Error)
	ids := make([]uint, 0, len(tracks))
	for _, tr := range tracks {
		ids = append(ids, tr.TrackID)
	}
	return ids
}

func fieldDirty(t *testing.T, db *gorm.DB, fieldID uint) bool {
	t.Helper()
	var f entities.Field
	require.NoError(t, db.First(&f, "field_id = ?", fieldID).Error)
	return f.Dirty
}

func TestRename(t *testing.T) {
	db, svc, field := seed(t)
	ids := trackIDs(t, db, field.FieldID)

	got, err := svc.Rename(ids[0], "client1", "  North edge  ")
	require.NoError(t, err)
	assert.Equal(t, "North edge", got.Name)
	assert.Equal(t, "AB 1", got.SourceName)
	assert.True(t, fieldDirty(t, db, field.FieldID))

	var stored entities.Track
	require.NoError(t, db.First(&stored, "track_id = ?", ids[0]).Error)
	assert.Equal(t, "North edge", stored.Name)
}

func TestRenameRejected(t *testing.T) {
	db, svc, field := seed(t)
	ids := trackIDs(t, db, field.FieldID)

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.Rename(ids[0], "client1", "   ")
		assert.Error(t, err)
	})

	t.Run("foreign client", func(t *testing.T) {
		_, err := svc.Rename(ids[0], "someone-else", "x")
		assert.Error(t, err)
	})

	t.Run("unknown track", func(t *testing.T) {
		_, err := svc.Rename(99999, "client1", "x")
		assert.Error(t, err)
	})
	assert.False(t, fieldDirty(t, db, field.FieldID))
}

func TestReorder(t *testing.T) {
	db, svc, field := seed(t)
	ids := trackIDs(t, db, field.FieldID)

	got, err := svc.Reorder(field.FieldID, "client1", []uint{ids[2], ids[0], ids[1]})
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Positions come back contiguous in the requested order.
	assert.Equal(t, ids[2], got[0].TrackID)
	assert.Equal(t, ids[0], got[1].TrackID)
	assert.Equal(t, ids[1], got[2].TrackID)
	for i, tr := range got {
		assert.Equal(t, i+1, tr.Position)
	}
	assert.True(t, fieldDirty(t, db, field.FieldID))
}

func TestReorderRejected(t *testing.T) {
	db, svc, field := seed(t)
	ids := trackIDs(t, db, field.FieldID)

	t.Run("incomplete list", func(t *testing.T) {
		_, err := svc.Reorder(field.FieldID, "client1", ids[:2])
		assert.Error(t, err)
	})

	t.Run("duplicate entry", func(t *testing.T) {
		_, err := svc.Reorder(field.FieldID, "client1", []uint{ids[0], ids[0], ids[1]})
		assert.Error(t, err)
	})

	t.Run("foreign track id", func(t *testing.T) {
		_, err := svc.Reorder(field.FieldID, "client1", []uint{ids[0], ids[1], 99999})
		assert.Error(t, err)
	})

	t.Run("foreign client", func(t *testing.T) {
		_, err := svc.Reorder(field.FieldID, "intruder", ids)
		assert.Error(t, err)
	})

	// Failed reorders leave the original order in place.
	assert.Equal(t, ids, trackIDs(t, db, field.FieldID))
	assert.False(t, fieldDirty(t, db, field.FieldID))
}
