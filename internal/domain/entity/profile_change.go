package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfileChange is a lightweight audit record written whenever a user edits
// their own profile. Admins can review the most recent changes.
type ProfileChange struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ProfileChange) TableName() string {
	return "profile_changes"
}
