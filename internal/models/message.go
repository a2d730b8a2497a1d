// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Message is a direct message between two users. A conversation is the union
// of both directions between a sender/receiver pair.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Sender     User      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"-"`
	Receiver   User      `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"-"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// Conversation is a derived row for the conversation list: the counterpart
// user plus the most recent message exchanged with them.
type Conversation struct {
	UserID          uint      `json:"id"`
	Username        string    `json:"username"`
	Avatar          string    `json:"avatar"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
}
