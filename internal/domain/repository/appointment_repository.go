package repository

import (
	"time"

	"go-counseling-care/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatient(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByCounselor(db *gorm.DB, counselorID uuid.UUID) ([]entity.Appointment, error)
	// ExistsForSlot reports whether a non-canceled appointment occupies the
	// exact (counselor, date, time) tuple.
	ExistsForSlot(db *gorm.DB, counselorID uuid.UUID, date time.Time, timeOfDay string) (bool, error)
	// ExistsByCounselorAndPatient reports whether the patient has any
	// non-canceled appointment with the counselor.
	ExistsByCounselorAndPatient(db *gorm.DB, counselorID, patientID uuid.UUID) (bool, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	DeleteByPatient(db *gorm.DB, patientID uuid.UUID) error
	DeleteByCounselor(db *gorm.DB, counselorID uuid.UUID) error
}
