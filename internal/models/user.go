// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Identity issuance lives in the auth
// handlers; everything else in the system only ever reads the resolved user ID.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tracks    []Track   `gorm:"foreignKey:SubmittedByID" json:"tracks,omitempty"`
}
