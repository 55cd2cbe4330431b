package repository

import (
	"go-counseling-care/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	Create(db *gorm.DB, slot *entity.AvailabilitySlot) error
	FindByCounselor(db *gorm.DB, counselorID uuid.UUID) ([]entity.AvailabilitySlot, error)
	FindByCounselorAndDay(db *gorm.DB, counselorID uuid.UUID, dayOfWeek int) ([]entity.AvailabilitySlot, error)
	DeleteByCounselor(db *gorm.DB, counselorID uuid.UUID) error
}
