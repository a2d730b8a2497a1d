// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// MediaType distinguishes image and video uploads.
type MediaType string

const (
	// MediaTypeImage marks image media.
	MediaTypeImage MediaType = "image"
	// MediaTypeVideo marks video media.
	MediaTypeVideo MediaType = "video"
)

// Post represents a media post in the Pulse application.
type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	MediaURL     string    `gorm:"size:500;not null" json:"media_url"`
	MediaType    MediaType `gorm:"size:10;not null" json:"media_type"`
	Caption      string    `gorm:"type:text" json:"caption"`
	IsReel       bool      `gorm:"default:false;index" json:"is_reel"`
	CollabUserID *uint     `json:"collab_user_id,omitempty"`
	FilterType   string    `gorm:"size:50" json:"filter_type"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// LikeCount is not persisted; computed at query time
	LikeCount int `gorm:"->;-:migration" json:"like_count"`
	// UserLiked indicates whether the requesting user liked this post (computed)
	UserLiked bool `gorm:"->;-:migration" json:"user_liked"`
	// UserSaved indicates whether the requesting user bookmarked this post (computed)
	UserSaved bool `gorm:"->;-:migration" json:"user_saved"`
}

// Like records that a user liked a post. The (user, post) pair is unique so
// a post can be liked at most once per user.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedPost is the bookmarking relation between a user and a post.
type SavedPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_saved_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_saved_user_post" json:"post_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
