package repository

import (
	"context"
	"time"

	"pulse/internal/models"

	"gorm.io/gorm"
)

// StreamRepository defines the interface for live stream data operations
type StreamRepository interface {
	Start(ctx context.Context, userID uint) (*models.LiveStream, error)
	End(ctx context.Context, userID uint) error
	Live(ctx context.Context) ([]*models.LiveStream, error)
	GetByID(ctx context.Context, id uint) (*models.LiveStream, error)
	AddMessage(ctx context.Context, message *models.LiveMessage) error
	RecentMessages(ctx context.Context, streamID uint, limit int) ([]*models.LiveMessage, error)
}

type streamRepository struct {
	db *gorm.DB
}

// NewStreamRepository creates a new live stream repository
func NewStreamRepository(db *gorm.DB) StreamRepository {
	return &streamRepository{db: db}
}

// Start ends any stream the user still has live, then inserts a fresh one.
// Both steps run in one transaction so the user never holds two live rows.
func (r *streamRepository) Start(ctx context.Context, userID uint) (*models.LiveStream, error) {
	stream := &models.LiveStream{UserID: userID, Status: models.StreamStatusLive}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := endLive(tx, userID); err != nil {
			return err
		}
		return tx.Create(stream).Error
	})
	if err != nil {
		return nil, err
	}
	return stream, nil
}

// End is idempotent: ending with no live stream succeeds.
func (r *streamRepository) End(ctx context.Context, userID uint) error {
	return endLive(r.db.WithContext(ctx), userID)
}

func endLive(tx *gorm.DB, userID uint) error {
	now := time.Now()
	return tx.Model(&models.LiveStream{}).
		Where("user_id = ? AND status = ?", userID, models.StreamStatusLive).
		Updates(map[string]any{"status": models.StreamStatusEnded, "ended_at": now}).Error
}

func (r *streamRepository) Live(ctx context.Context) ([]*models.LiveStream, error) {
	var streams []*models.LiveStream
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", models.StreamStatusLive).
		Order("created_at DESC").
		Find(&streams).Error
	return streams, err
}

func (r *streamRepository) GetByID(ctx context.Context, id uint) (*models.LiveStream, error) {
	var stream models.LiveStream
	if err := r.db.WithContext(ctx).Preload("User").First(&stream, id).Error; err != nil {
		return nil, err
	}
	return &stream, nil
}

func (r *streamRepository) AddMessage(ctx context.Context, message *models.LiveMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// RecentMessages returns the newest messages re-ordered chronologically so
// chat renders oldest to newest.
func (r *streamRepository) RecentMessages(ctx context.Context, streamID uint, limit int) ([]*models.LiveMessage, error) {
	var messages []*models.LiveMessage
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("stream_id = ?", streamID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
