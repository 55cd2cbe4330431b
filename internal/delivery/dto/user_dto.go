package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateCounselorRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FullName  string `json:"full_name" validate:"required,min=2,max=255"`
	Specialty string `json:"specialty,omitempty" validate:"max=100"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin counselor patient"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName         string  `json:"full_name,omitempty" validate:"max=255"`
	Specialty        *string `json:"specialty,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
}

// Response DTOs

type ProfileChangeResponse struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProfileChangeListResponse struct {
	Changes []ProfileChangeResponse `json:"changes"`
	Total   int                     `json:"total"`
}
