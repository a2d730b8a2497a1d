// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Follow is a directed edge in the social graph. The (follower, following)
// pair is unique so the same edge cannot be created twice.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follows_edge" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follows_edge" json:"following_id"`
	Follower    User      `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Following   User      `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
