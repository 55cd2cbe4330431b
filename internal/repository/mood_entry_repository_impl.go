package repository

import (
	"errors"
	"time"

	"go-counseling-care/internal/domain/entity"
	domainRepo "go-counseling-care/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type moodEntryRepository struct{}

func NewMoodEntryRepository() domainRepo.MoodEntryRepository {
	return &moodEntryRepository{}
}

func (r *moodEntryRepository) Save(db *gorm.DB, entry *entity.MoodEntry) error {
	return db.Save(entry).Error
}

func (r *moodEntryRepository) FindByPatientAndDate(db *gorm.DB, patientID uuid.UUID, entryDate time.Time) (*entity.MoodEntry, error) {
	var entry entity.MoodEntry
	err := db.Where("patient_id = ? AND entry_date = ?", patientID, entryDate.Format("2006-01-02")).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *moodEntryRepository) FindByPatient(db *gorm.DB, patientID uuid.UUID) ([]entity.MoodEntry, error) {
	var entries []entity.MoodEntry
	err := db.Where("patient_id = ?", patientID).
		Order("entry_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *moodEntryRepository) DeleteByPatient(db *gorm.DB, patientID uuid.UUID) error {
	return db.Delete(&entity.MoodEntry{}, "patient_id = ?", patientID).Error
}
