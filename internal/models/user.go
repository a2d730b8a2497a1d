// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. PasswordHash is empty for accounts
// created through federated login only.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `json:"-"`
	GoogleID     string    `gorm:"index" json:"-"`
	Bio          string    `json:"bio"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// PostCount is not persisted; computed at query time for profile views
	PostCount int `gorm:"->;-:migration" json:"post_count,omitempty"`
}
