package repositoryImp

import (
	"gorm.io/gorm"

	"cereagis/entities"
	"cereagis/pkg/bundle/repository"
)

type bundleRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BundleRepository { return &bundleRepo{db} }

func (r *bundleRepo) CreateSession(s *entities.ImportSession) error {
	return r.db.Create(s).Error
}

func (r *bundleRepo) FindSession(id, clientID string) (*entities.ImportSession, error) {
	var s entities.ImportSession
	if err := r.db.Where("id = ? AND client_id = ?", id, clientID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *bundleRepo) SessionSummary(id, clientID string) (*entities.ImportSession, error) {
	var s entities.ImportSession
	err := r.db.
		Preload("Farms", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("Farms.Fields", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Where("id = ? AND client_id = ?", id, clientID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *bundleRepo) SessionTree(id, clientID string) (*entities.ImportSession, error) {
	var s entities.ImportSession
	err := r.db.
		Preload("Farms", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("Farms.Fields", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("Farms.Fields.Tracks", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ? AND client_id = ?", id, clientID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *bundleRepo) DeleteSession(s *entities.ImportSession) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", s.ID).Delete(&entities.Track{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", s.ID).Delete(&entities.Field{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", s.ID).Delete(&entities.Farm{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.ImportSession{}, "id = ?", s.ID).Error
	})
}

func (r *bundleRepo) PurgeClient(clientID string) ([]string, error) {
	var sessions []entities.ImportSession
	if err := r.db.Where("client_id = ?", clientID).Find(&sessions).Error; err != nil {
		return nil, err
	}
	var roots []string
	for i := range sessions {
		if err := r.DeleteSession(&sessions[i]); err != nil {
			return roots, err
		}
		roots = append(roots, sessions[i].WorkDir)
	}
	return roots, nil
}

func (r *bundleRepo) ClearDirty(sessionID string) error {
	return r.db.Model(&entities.Field{}).Where("session_id = ?", sessionID).Update("dirty", false).Error
}
