package converter

import (
	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/domain/entity"
)

func ProfileChangesToResponses(changes []entity.ProfileChange) []dto.ProfileChangeResponse {
	responses := make([]dto.ProfileChangeResponse, len(changes))
	for i, change := range changes {
		responses[i] = dto.ProfileChangeResponse{
			ID:          change.ID,
			UserID:      change.UserID,
			Description: change.Description,
			CreatedAt:   change.CreatedAt,
		}
	}
	return responses
}
