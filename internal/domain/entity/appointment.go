package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
)

// IsValid reports whether s is one of the recognized appointment statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusCanceled:
		return true
	}
	return false
}

// Appointment represents a booked session between a patient and a counselor.
// At most one non-canceled appointment may exist per
// (counselor, appointment_date, appointment_time); a partial unique index
// enforces this at the storage layer.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	CounselorID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"counselor_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:time;not null" json:"appointment_time"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Counselor User           `gorm:"foreignKey:CounselorID" json:"counselor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCanceled checks if the appointment has been canceled
func (a *Appointment) IsCanceled() bool {
	return a.Status == AppointmentStatusCanceled
}
