package models

import (
	"time"
)

// Track represents a submitted link in the Waveboard application.
// Submission does not require authentication, so SubmittedByID is nullable.
type Track struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	URL           string `gorm:"not null" json:"url"`
	Title         string `json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	SubmittedByID *uint  `gorm:"index" json:"submitted_by_id,omitempty"`
	SubmittedBy   *User  `gorm:"foreignKey:SubmittedByID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"submitted_by,omitempty"`
	// VoteCount is not persisted; computed at query time
	VoteCount int `gorm:"->;-:migration" json:"vote_count"`
	// TopRating is the modal rating, nil when the track has no votes (computed)
	TopRating *int      `gorm:"->;-:migration" json:"top_rating"`
	CreatedAt time.Time `json:"created_at"`
}
