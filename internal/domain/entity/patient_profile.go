package entity

import (
	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	EmergencyContact    string     `gorm:"type:varchar(100)" json:"emergency_contact,omitempty"`
	AssignedCounselorID *uuid.UUID `gorm:"type:uuid;index" json:"assigned_counselor_id,omitempty"`

	// Relationships
	User              User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AssignedCounselor *User         `gorm:"foreignKey:AssignedCounselorID" json:"assigned_counselor,omitempty"`
	Appointments      []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	MoodEntries       []MoodEntry   `gorm:"foreignKey:PatientID" json:"mood_entries,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
