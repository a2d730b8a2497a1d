// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// NotificationType identifies what action produced a notification.
type NotificationType string

const (
	// NotificationTypeLike is emitted when someone likes a post.
	NotificationTypeLike NotificationType = "like"
	// NotificationTypeComment is emitted when someone comments on a post.
	NotificationTypeComment NotificationType = "comment"
	// NotificationTypeFollow is emitted when someone follows a user.
	NotificationTypeFollow NotificationType = "follow"
)

// Notification records an actor's action targeting a recipient's content.
// Self-notifications are suppressed at the write boundary, not here.
type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RecipientID uint             `gorm:"not null;index" json:"recipient_id"`
	ActorID     uint             `gorm:"not null" json:"actor_id"`
	Recipient   User             `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
	Actor       User             `gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE" json:"actor,omitempty"`
	Type        NotificationType `gorm:"size:20;not null" json:"type"`
	PostID      *uint            `json:"post_id,omitempty"`
	Post        *Post            `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	IsRead      bool             `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time        `gorm:"index" json:"created_at"`
}
