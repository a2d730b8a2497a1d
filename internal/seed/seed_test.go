package seed

import (
	"testing"
	"time"

	"pulse/internal/database"
	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

func TestSeed(t *testing.T) {
	db := setupSeedDB(t)

	// ShouldClean uses TRUNCATE ... CASCADE, which sqlite does not support.
	err := Seed(db, Options{NumUsers: 10, NumPosts: 20})
	require.NoError(t, err)

	var userCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.EqualValues(t, 10, userCount)
	assert.EqualValues(t, 20, postCount)

	// Fixed accounts exist and share the documented password.
	var alice models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&alice).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(alice.PasswordHash), []byte("password123")))

	// No follow edge points at its own follower.
	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = following_id").Count(&selfFollows).Error)
	assert.Zero(t, selfFollows)

	// Seeded stories are still inside their lifetime window.
	var stories []models.Story
	require.NoError(t, db.Find(&stories).Error)
	for _, s := range stories {
		assert.True(t, s.ExpiresAt.After(time.Now()), "story %d already expired", s.ID)
	}
}

func TestSeed_NoUsersNoPosts(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 0, NumPosts: 0}))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
