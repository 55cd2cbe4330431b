package entity

import (
	"time"

	"github.com/google/uuid"
)

// Day-of-week convention: 0=Sunday .. 6=Saturday.
const (
	DayOfWeekMin = 0
	DayOfWeekMax = 6
)

// AvailabilitySlot is one weekly availability window declared by a counselor.
// Slots for a counselor are always replaced wholesale, never patched.
type AvailabilitySlot struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CounselorID uuid.UUID `gorm:"type:uuid;not null;index" json:"counselor_id"`
	DayOfWeek   int       `gorm:"not null" json:"day_of_week"`
	StartTime   string    `gorm:"type:time;not null" json:"start_time"`
	EndTime     string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Counselor User `gorm:"foreignKey:CounselorID" json:"counselor,omitempty"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}
