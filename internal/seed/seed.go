// Package seed provides database seeding utilities for development
// environments. It is not used by the production server.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"pulse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configures how much data Seed generates.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with test data. Every seeded account has
// the password "password123".
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	log.Printf("🌱 Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	follows, err := createFollows(db, users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("✓ %d follow edges created", follows)

	likes, comments, err := createEngagement(db, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Printf("✓ %d likes and %d comments created", likes, comments)

	stories, err := createStories(db, users)
	if err != nil {
		return fmt.Errorf("failed to create stories: %w", err)
	}
	log.Printf("✓ %d stories created", stories)

	log.Println("🎉 Seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE live_messages, live_streams, stories, messages, notifications,
		saved_posts, comments, likes, follows, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// A few fixed accounts so developers can log in without hunting
	// through generated usernames.
	if count >= 3 {
		for _, u := range []string{"alice", "bob", "test"} {
			user := models.User{
				Username:     u,
				Email:        fmt.Sprintf("%s@example.com", u),
				PasswordHash: string(hashed),
				Bio:          "One of the OGs.",
				Avatar:       fmt.Sprintf("https://i.pravatar.cc/150?u=%s", u),
			}
			if err := db.Create(&user).Error; err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		// gofakeit usernames collide at scale; suffix with the index.
		username := strings.ToLower(fmt.Sprintf("%s%d", gofakeit.Username(), i))
		user := models.User{
			Username:     username,
			Email:        fmt.Sprintf("%s@example.com", username),
			PasswordHash: string(hashed),
			Bio:          gofakeit.Sentence(8),
			Avatar:       fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", username, err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []models.User, count int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}
	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	posts := make([]models.Post, 0, count)

	for i := 0; i < count; i++ {
		user := users[r.Intn(len(users))]
		isReel := r.Float32() < 0.2

		post := models.Post{
			UserID:    user.ID,
			Caption:   gofakeit.Sentence(r.Intn(12) + 3),
			IsReel:    isReel,
			MediaURL:  fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
			MediaType: models.MediaTypeImage,
			CreatedAt: randomPastTime(r, 30),
		}
		if isReel {
			post.MediaType = models.MediaTypeVideo
		}
		if r.Float32() < 0.3 {
			post.FilterType = gofakeit.RandomString([]string{"clarendon", "gingham", "juno", "lark", "moon"})
		}

		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}
	return posts, nil
}

func createFollows(db *gorm.DB, users []models.User) (int, error) {
	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0

	for _, follower := range users {
		for i := 0; i < r.Intn(8); i++ {
			target := users[r.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Follow{
				FollowerID:  follower.ID,
				FollowingID: target.ID,
			})
			if res.Error != nil {
				return created, res.Error
			}
			created += int(res.RowsAffected)
		}
	}
	return created, nil
}

func createEngagement(db *gorm.DB, users []models.User, posts []models.Post) (likes, comments int, err error) {
	if len(users) == 0 || len(posts) == 0 {
		return 0, 0, nil
	}
	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := range posts {
		post := &posts[i]

		for j := 0; j < r.Intn(6); j++ {
			user := users[r.Intn(len(users))]
			res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Like{
				UserID: user.ID,
				PostID: post.ID,
			})
			if res.Error != nil {
				return likes, comments, res.Error
			}
			likes += int(res.RowsAffected)
		}

		for j := 0; j < r.Intn(4); j++ {
			user := users[r.Intn(len(users))]
			if err := db.Create(&models.Comment{
				PostID:  post.ID,
				UserID:  user.ID,
				Content: gofakeit.Sentence(r.Intn(10) + 2),
			}).Error; err != nil {
				return likes, comments, err
			}
			comments++
		}
	}
	return likes, comments, nil
}

func createStories(db *gorm.DB, users []models.User) (int, error) {
	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0

	for _, user := range users {
		if r.Float32() > 0.3 {
			continue
		}
		posted := time.Now().Add(-time.Duration(r.Intn(20)) * time.Hour)
		story := models.Story{
			UserID:    user.ID,
			MediaURL:  fmt.Sprintf("https://picsum.photos/seed/story-%s/600/1000", gofakeit.UUID()),
			MediaType: models.MediaTypeImage,
			CreatedAt: posted,
			ExpiresAt: posted.Add(models.StoryLifetime),
		}
		if err := db.Create(&story).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func randomPastTime(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}
