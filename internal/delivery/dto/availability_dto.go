package dto

// Request DTOs

type AvailabilitySlotRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type ReplaceAvailabilityRequest struct {
	Slots []AvailabilitySlotRequest `json:"slots"`
}

// Response DTOs

type AvailabilitySlotResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityListResponse struct {
	Slots []AvailabilitySlotResponse `json:"slots"`
	Total int                        `json:"total"`
}
