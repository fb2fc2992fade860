package models

import (
	"time"
)

// Comment represents a user's comment on a track.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TrackID   uint      `gorm:"not null;index" json:"track_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
	Track Track `gorm:"foreignKey:TrackID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"track"`
}
