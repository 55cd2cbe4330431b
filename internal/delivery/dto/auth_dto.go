package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Email               string     `json:"email" validate:"required,email"`
	Password            string     `json:"password" validate:"required,min=8,max=72"`
	FullName            string     `json:"full_name" validate:"required,min=2,max=255"`
	EmergencyContact    string     `json:"emergency_contact,omitempty" validate:"max=100"`
	AssignedCounselorID *uuid.UUID `json:"assigned_counselor_id,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	FullName       string                  `json:"full_name"`
	Specialty      string                  `json:"specialty,omitempty"`
	Role           string                  `json:"role,omitempty"`
	IsActive       bool                    `json:"is_active"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type PatientProfileResponse struct {
	UserID              uuid.UUID  `json:"user_id"`
	EmergencyContact    string     `json:"emergency_contact,omitempty"`
	AssignedCounselorID *uuid.UUID `json:"assigned_counselor_id,omitempty"`
}
