package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	CounselorID     uuid.UUID `json:"counselor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"`
	AppointmentTime string    `json:"appointment_time" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	AppointmentDate string          `json:"appointment_date"`
	AppointmentTime string          `json:"appointment_time"`
	Status          string          `json:"status"`
	Counselor       *UserSummary    `json:"counselor,omitempty"`
	Patient         *PatientSummary `json:"patient,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Specialty string    `json:"specialty,omitempty"`
}

type PatientSummary struct {
	UserID           uuid.UUID    `json:"user_id"`
	User             *UserSummary `json:"user,omitempty"`
	EmergencyContact string       `json:"emergency_contact,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientSummary `json:"patients"`
	Total    int              `json:"total"`
}
