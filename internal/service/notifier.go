// Package service holds the application's business logic above the
// repository layer.
package service

import (
	"context"
	"log/slog"

	"pulse/internal/models"
	"pulse/internal/observability"
	"pulse/internal/repository"
)

// Notifier fans out notifications after a like, comment or follow. Fan-out
// is best effort: the triggering action has already committed, so a failed
// insert is logged and counted, never returned to the caller.
type Notifier struct {
	notifications repository.NotificationRepository
	logger        *slog.Logger
}

// NewNotifier creates a notification fan-out service.
func NewNotifier(notifications repository.NotificationRepository, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{notifications: notifications, logger: logger}
}

// Notify records that actor performed an action targeting recipient's
// content. Actions on one's own content are suppressed.
func (n *Notifier) Notify(ctx context.Context, recipientID, actorID uint, typ models.NotificationType, postID *uint) {
	if recipientID == actorID {
		return
	}

	notification := &models.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Type:        typ,
		PostID:      postID,
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		observability.NotificationFanoutFailures.WithLabelValues(string(typ)).Inc()
		n.logger.ErrorContext(ctx, "notification fan-out failed",
			"type", typ,
			"recipient_id", recipientID,
			"actor_id", actorID,
			"error", err,
		)
		return
	}
	observability.NotificationsFanned.WithLabelValues(string(typ)).Inc()
}
