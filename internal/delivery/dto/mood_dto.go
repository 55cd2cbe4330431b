package dto

// Request DTOs

type MoodRequest struct {
	Rating    int    `json:"rating" validate:"required,gte=1,lte=10"`
	Notes     string `json:"notes,omitempty"`
	EntryDate string `json:"entry_date,omitempty"`
}

// Response DTOs

type MoodEntryResponse struct {
	ID        int64  `json:"id"`
	Rating    int    `json:"rating"`
	Notes     string `json:"notes,omitempty"`
	EntryDate string `json:"entry_date"`
}

type MoodEntryListResponse struct {
	Entries []MoodEntryResponse `json:"entries"`
	Total   int                 `json:"total"`
}
