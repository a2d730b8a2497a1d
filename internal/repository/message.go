package repository

import (
	"context"

	"pulse/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for direct message operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	Conversation(ctx context.Context, userID, otherID uint) ([]*models.Message, error)
	Conversations(ctx context.Context, userID uint) ([]models.Conversation, error)
	MarkConversationRead(ctx context.Context, userID, otherID uint) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// Conversation fetches both directions of a thread in chronological order.
func (r *messageRepository) Conversation(ctx context.Context, userID, otherID uint) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// Conversations lists every counterpart the user has exchanged messages
// with, each carrying the latest message, most recent thread first.
func (r *messageRepository) Conversations(ctx context.Context, userID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id AS user_id, u.username, u.avatar,
		(SELECT content FROM messages
		 WHERE (sender_id = u.id AND receiver_id = @uid) OR (sender_id = @uid AND receiver_id = u.id)
		 ORDER BY created_at DESC LIMIT 1) AS last_message,
		(SELECT created_at FROM messages
		 WHERE (sender_id = u.id AND receiver_id = @uid) OR (sender_id = @uid AND receiver_id = u.id)
		 ORDER BY created_at DESC LIMIT 1) AS last_message_time
		FROM users u
		WHERE u.id IN (
			SELECT DISTINCT CASE
				WHEN sender_id = @uid THEN receiver_id
				ELSE sender_id
			END
			FROM messages
			WHERE sender_id = @uid OR receiver_id = @uid
		)
		ORDER BY last_message_time DESC`,
		map[string]any{"uid": userID},
	).Scan(&conversations).Error
	return conversations, err
}

// MarkConversationRead flags everything the counterpart sent as read.
func (r *messageRepository) MarkConversationRead(ctx context.Context, userID, otherID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", otherID, userID, false).
		Update("is_read", true).Error
}
