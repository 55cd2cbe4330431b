package repository

import (
	"go-counseling-care/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	FindByAssignedCounselor(db *gorm.DB, counselorID uuid.UUID) ([]entity.PatientProfile, error)
	ClearAssignedCounselor(db *gorm.DB, counselorID uuid.UUID) error
	Update(db *gorm.DB, profile *entity.PatientProfile) error
	Delete(db *gorm.DB, userID uuid.UUID) error
}
