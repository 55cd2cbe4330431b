package converter

import (
	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/domain/entity"
)

func MoodEntryToResponse(entry *entity.MoodEntry) *dto.MoodEntryResponse {
	if entry == nil {
		return nil
	}
	return &dto.MoodEntryResponse{
		ID:        entry.ID,
		Rating:    entry.Rating,
		Notes:     entry.Notes,
		EntryDate: entry.EntryDate.Format("2006-01-02"),
	}
}

func MoodEntriesToResponses(entries []entity.MoodEntry) []dto.MoodEntryResponse {
	responses := make([]dto.MoodEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *MoodEntryToResponse(&entries[i])
	}
	return responses
}
