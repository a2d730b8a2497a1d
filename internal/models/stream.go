// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// StreamStatus is the lifecycle state of a live stream record.
type StreamStatus string

const (
	// StreamStatusLive marks a stream currently broadcasting.
	StreamStatusLive StreamStatus = "live"
	// StreamStatusEnded marks a finished stream.
	StreamStatusEnded StreamStatus = "ended"
)

// LiveStream is a live-broadcast record. There is no media transport; "live"
// is a status flag with a chat side-channel. At most one live stream exists
// per user at any time.
type LiveStream struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uint         `gorm:"not null;index" json:"user_id"`
	User        User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Status      StreamStatus `gorm:"size:10;default:'live';index" json:"status"`
	ViewerCount int          `gorm:"default:0" json:"viewer_count"`
	CreatedAt   time.Time    `gorm:"index" json:"created_at"`
	EndedAt     *time.Time   `json:"ended_at,omitempty"`
}

// LiveMessage is an ephemeral chat message tied to a stream.
type LiveMessage struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	StreamID  uint       `gorm:"not null;index" json:"stream_id"`
	UserID    uint       `gorm:"not null" json:"user_id"`
	Stream    LiveStream `gorm:"foreignKey:StreamID;constraint:OnDelete:CASCADE" json:"-"`
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time  `json:"created_at"`
}
