package entity

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry is a patient's self-reported mood for a single day.
// One entry per (patient, entry_date); repeated submissions update in place.
type MoodEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:mood_entries_patient_date_key" json:"patient_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	EntryDate time.Time `gorm:"type:date;not null;uniqueIndex:mood_entries_patient_date_key" json:"entry_date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}
