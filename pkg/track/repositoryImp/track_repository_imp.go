package repositoryImp

import (
	"gorm.io/gorm"

	"cereagis/entities"
	"cereagis/pkg/track/repository"
)

type trackRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TrackRepository { return &trackRepo{db} }

func (r *trackRepo) FindByID(id uint, clientID string) (*entities.Track, error) {
	var t entities.Track
	err := r.db.
		Joins("JOIN import_sessions ON import_sessions.id = tracks.session_id").
		Where("tracks.track_id = ? AND import_sessions.client_id = ?", id, clientID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *trackRepo) ListByField(fieldID uint, clientID string) ([]entities.Track, error) {
	var out []entities.Track
	err := r.db.
		Joins("JOIN import_sessions ON import_sessions.id = tracks.session_id").
		Where("tracks.field_id = ? AND import_sessions.client_id = ?", fieldID, clientID).
		Order("tracks.position ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *trackRepo) Rename(t *entities.Track, name string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Track{}).Where("track_id = ?", t.TrackID).
			Update("name", name).Error; err != nil {
			return err
		}
		t.Name = name
		return tx.Model(&entities.Field{}).Where("field_id = ?", t.FieldID).
			Update("dirty", true).Error
	})
}

func (r *trackRepo) Reorder(fieldID uint, orderedIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&entities.Track{}).
				Where("track_id = ? AND field_id = ?", id, fieldID).
				Update("position", i+1).Error; err != nil {
				return err
			}
		}
		return tx.Model(&entities.Field{}).Where("field_id = ?", fieldID).
			Update("dirty", true).Error
	})
}
