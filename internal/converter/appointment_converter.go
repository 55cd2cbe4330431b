package converter

import (
	"time"

	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO.
// Counselor and patient summaries are included when the relations are loaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime: formatTimeOfDay(appointment.AppointmentTime),
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Counselor.ID != uuid.Nil {
		response.Counselor = UserToSummary(&appointment.Counselor)
	}
	if appointment.Patient.UserID != uuid.Nil {
		response.Patient = PatientToSummary(&appointment.Patient)
	}

	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// formatTimeOfDay renders "HH:MM" regardless of whether the stored value
// carries seconds (postgres time columns scan as "HH:MM:SS").
func formatTimeOfDay(s string) string {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format("15:04")
	}
	return s
}
