package repository

import (
	"go-counseling-care/internal/domain/entity"

	"gorm.io/gorm"
)

type ProfileChangeRepository interface {
	Create(db *gorm.DB, change *entity.ProfileChange) error
	FindLatest(db *gorm.DB, limit int) ([]entity.ProfileChange, error)
}
