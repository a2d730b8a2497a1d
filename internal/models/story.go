// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// StoryLifetime is how long a story stays visible after creation.
const StoryLifetime = 24 * time.Hour

// Story is a time-limited media post. Expired stories remain stored but are
// filtered out of every listing once ExpiresAt passes.
type Story struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	MediaURL  string    `gorm:"size:500;not null" json:"media_url"`
	MediaType MediaType `gorm:"size:10;not null" json:"media_type"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

// Expired reports whether the story is past its expiry at the given instant.
func (s *Story) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
