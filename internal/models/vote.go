package models

import (
	"time"
)

// Rating bounds for a vote.
const (
	MinRating = 1
	MaxRating = 5
)

// Vote represents a user's 1-5 rating of a track.
// The combination of UserID and TrackID must be unique; voting again on the
// same track overwrites the stored rating in place.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_track" json:"user_id"`
	TrackID   uint      `gorm:"not null;uniqueIndex:idx_user_track" json:"track_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
	Track Track `gorm:"foreignKey:TrackID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"track"`
}
