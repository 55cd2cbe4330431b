package repository

import (
	"go-counseling-care/internal/domain/entity"
	domainRepo "go-counseling-care/internal/domain/repository"

	"gorm.io/gorm"
)

type profileChangeRepository struct{}

func NewProfileChangeRepository() domainRepo.ProfileChangeRepository {
	return &profileChangeRepository{}
}

func (r *profileChangeRepository) Create(db *gorm.DB, change *entity.ProfileChange) error {
	return db.Create(change).Error
}

func (r *profileChangeRepository) FindLatest(db *gorm.DB, limit int) ([]entity.ProfileChange, error) {
	var changes []entity.ProfileChange
	err := db.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&changes).Error
	if err != nil {
		return nil, err
	}
	return changes, nil
}
