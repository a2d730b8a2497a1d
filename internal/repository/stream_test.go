package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamRepository_StartEndsPriorLive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStreamRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "broadcaster")

	first, err := repo.Start(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StreamStatusLive, first.Status)

	second, err := repo.Start(ctx, user.ID)
	require.NoError(t, err)

	var prior models.LiveStream
	require.NoError(t, db.First(&prior, first.ID).Error)
	assert.Equal(t, models.StreamStatusEnded, prior.Status)
	require.NotNil(t, prior.EndedAt)

	// Exactly one live stream per user.
	var liveCount int64
	require.NoError(t, db.Model(&models.LiveStream{}).
		Where("user_id = ? AND status = ?", user.ID, models.StreamStatusLive).
		Count(&liveCount).Error)
	assert.Equal(t, int64(1), liveCount)

	live, err := repo.Live(ctx)
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, second.ID, live[0].ID)
	assert.Equal(t, "broadcaster", live[0].User.Username)
}

func TestStreamRepository_EndWithoutLive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStreamRepository(db)

	user := createTestUser(t, db, "broadcaster")

	assert.NoError(t, repo.End(context.Background(), user.ID))
}

func TestStreamRepository_RecentMessages(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStreamRepository(db)
	ctx := context.Background()

	broadcaster := createTestUser(t, db, "broadcaster")
	chatter := createTestUser(t, db, "chatter")

	stream, err := repo.Start(ctx, broadcaster.ID)
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 60; i++ {
		require.NoError(t, db.Create(&models.LiveMessage{
			StreamID:  stream.ID,
			UserID:    chatter.ID,
			Content:   fmt.Sprintf("msg %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	messages, err := repo.RecentMessages(ctx, stream.ID, 50)
	require.NoError(t, err)
	require.Len(t, messages, 50)

	// The newest 50, oldest first.
	assert.Equal(t, "msg 10", messages[0].Content)
	assert.Equal(t, "msg 59", messages[49].Content)
	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].CreatedAt.Before(messages[i-1].CreatedAt))
	}
}
