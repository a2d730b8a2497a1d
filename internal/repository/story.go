package repository

import (
	"context"
	"time"

	"pulse/internal/models"

	"gorm.io/gorm"
)

// StoryRepository defines the interface for story data operations
type StoryRepository interface {
	Create(ctx context.Context, story *models.Story) error
	Active(ctx context.Context, viewerID uint, now time.Time) ([]*models.Story, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository creates a new story repository
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *models.Story) error {
	return r.db.WithContext(ctx).Create(story).Error
}

// Active lists unexpired stories from the viewer and the users they follow,
// newest first. Expired rows stay stored; they just never match.
func (r *storyRepository) Active(ctx context.Context, viewerID uint, now time.Time) ([]*models.Story, error) {
	var stories []*models.Story
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("expires_at > ?", now).
		Where("user_id = ? OR user_id IN (?)",
			viewerID,
			r.db.Model(&models.Follow{}).Select("following_id").Where("follower_id = ?", viewerID),
		).
		Order("created_at DESC").
		Find(&stories).Error
	return stories, err
}

// DeleteExpired removes stories past their expiry; used by the background
// sweeper so the table does not grow without bound.
func (r *storyRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", before).
		Delete(&models.Story{})
	return result.RowsAffected, result.Error
}
