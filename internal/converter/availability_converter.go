package converter

import (
	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/domain/entity"
)

func AvailabilitySlotToResponse(slot *entity.AvailabilitySlot) *dto.AvailabilitySlotResponse {
	if slot == nil {
		return nil
	}
	return &dto.AvailabilitySlotResponse{
		ID:        slot.ID,
		DayOfWeek: slot.DayOfWeek,
		StartTime: formatTimeOfDay(slot.StartTime),
		EndTime:   formatTimeOfDay(slot.EndTime),
	}
}

func AvailabilitySlotsToResponses(slots []entity.AvailabilitySlot) []dto.AvailabilitySlotResponse {
	responses := make([]dto.AvailabilitySlotResponse, len(slots))
	for i := range slots {
		responses[i] = *AvailabilitySlotToResponse(&slots[i])
	}
	return responses
}
