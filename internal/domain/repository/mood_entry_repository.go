package repository

import (
	"time"

	"go-counseling-care/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MoodEntryRepository interface {
	Save(db *gorm.DB, entry *entity.MoodEntry) error
	FindByPatientAndDate(db *gorm.DB, patientID uuid.UUID, entryDate time.Time) (*entity.MoodEntry, error)
	FindByPatient(db *gorm.DB, patientID uuid.UUID) ([]entity.MoodEntry, error)
	DeleteByPatient(db *gorm.DB, patientID uuid.UUID) error
}
