package repository

import (
	"go-counseling-care/internal/domain/entity"
	domainRepo "go-counseling-care/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) Create(db *gorm.DB, slot *entity.AvailabilitySlot) error {
	return db.Create(slot).Error
}

func (r *availabilityRepository) FindByCounselor(db *gorm.DB, counselorID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	var slots []entity.AvailabilitySlot
	err := db.Where("counselor_id = ?", counselorID).
		Order("day_of_week ASC, start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *availabilityRepository) FindByCounselorAndDay(db *gorm.DB, counselorID uuid.UUID, dayOfWeek int) ([]entity.AvailabilitySlot, error) {
	var slots []entity.AvailabilitySlot
	err := db.Where("counselor_id = ? AND day_of_week = ?", counselorID, dayOfWeek).
		Order("start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *availabilityRepository) DeleteByCounselor(db *gorm.DB, counselorID uuid.UUID) error {
	return db.Delete(&entity.AvailabilitySlot{}, "counselor_id = ?", counselorID).Error
}
