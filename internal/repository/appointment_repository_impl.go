package repository

import (
	"errors"
	"time"

	"go-counseling-care/internal/domain/entity"
	domainRepo "go-counseling-care/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Counselor").Preload("Patient.User").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatient(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Counselor").
		Where("patient_id = ?", patientID).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByCounselor(db *gorm.DB, counselorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("counselor_id = ?", counselorID).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ExistsForSlot(db *gorm.DB, counselorID uuid.UUID, date time.Time, timeOfDay string) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("counselor_id = ? AND appointment_date = ? AND appointment_time = ? AND status != ?",
			counselorID, date.Format("2006-01-02"), timeOfDay, entity.AppointmentStatusCanceled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) ExistsByCounselorAndPatient(db *gorm.DB, counselorID, patientID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("counselor_id = ? AND patient_id = ? AND status != ?",
			counselorID, patientID, entity.AppointmentStatusCanceled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *appointmentRepository) DeleteByPatient(db *gorm.DB, patientID uuid.UUID) error {
	return db.Delete(&entity.Appointment{}, "patient_id = ?", patientID).Error
}

func (r *appointmentRepository) DeleteByCounselor(db *gorm.DB, counselorID uuid.UUID) error {
	return db.Delete(&entity.Appointment{}, "counselor_id = ?", counselorID).Error
}
