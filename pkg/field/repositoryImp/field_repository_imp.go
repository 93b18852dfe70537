package repositoryImp

import (
	"gorm.io/gorm"

	"cereagis/entities"
	"cereagis/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) FindByID(id uint, clientID string) (*entities.Field, error) {
	var f entities.Field
	err := r.db.
		Preload("Tracks", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Joins("JOIN import_sessions ON import_sessions.id = fields.session_id").
		Where("fields.field_id = ? AND import_sessions.client_id = ?", id, clientID).
		First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) ListBySession(sessionID, clientID string) ([]entities.Field, error) {
	var out []entities.Field
	err := r.db.
		Joins("JOIN import_sessions ON import_sessions.id = fields.session_id").
		Where("fields.session_id = ? AND import_sessions.client_id = ?", sessionID, clientID).
		Order("fields.farm_name ASC, fields.name ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fieldRepo) Save(f *entities.Field) error { return r.db.Save(f).Error }

func (r *fieldRepo) ReplaceTracks(f *entities.Field, tracks []entities.Track) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field_id = ?", f.FieldID).Delete(&entities.Track{}).Error; err != nil {
			return err
		}
		for i := range tracks {
			tracks[i].TrackID = 0
			tracks[i].FieldID = f.FieldID
			tracks[i].SessionID = f.SessionID
		}
		if len(tracks) > 0 {
			if err := tx.Create(&tracks).Error; err != nil {
				return err
			}
		}
		f.Tracks = tracks
		f.Dirty = false
		return tx.Model(&entities.Field{}).Where("field_id = ?", f.FieldID).
			Update("dirty", false).Error
	})
}
