package converter

import (
	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/domain/entity"

	"github.com/google/uuid"
)

// UserToResponse converts a User entity to UserResponse DTO
// Includes the patient profile if it is loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Specialty: user.Specialty,
		Role:      user.Role.RoleName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.PatientProfile != nil {
		response.PatientProfile = &dto.PatientProfileResponse{
			UserID:              user.PatientProfile.UserID,
			EmergencyContact:    user.PatientProfile.EmergencyContact,
			AssignedCounselorID: user.PatientProfile.AssignedCounselorID,
		}
	}

	return response
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

// UserToSummary converts a User entity to the compact summary embedded in
// appointment and patient responses
func UserToSummary(user *entity.User) *dto.UserSummary {
	if user == nil || user.ID == uuid.Nil {
		return nil
	}
	return &dto.UserSummary{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Specialty: user.Specialty,
	}
}

func PatientToSummary(profile *entity.PatientProfile) *dto.PatientSummary {
	if profile == nil || profile.UserID == uuid.Nil {
		return nil
	}
	return &dto.PatientSummary{
		UserID:           profile.UserID,
		User:             UserToSummary(&profile.User),
		EmergencyContact: profile.EmergencyContact,
	}
}
