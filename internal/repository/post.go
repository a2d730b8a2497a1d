package repository

import (
	"context"
	"errors"

	"pulse/internal/cache"
	"pulse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrAlreadyLiked is returned when a user likes a post a second time.
var ErrAlreadyLiked = errors.New("post already liked")

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	Feed(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, currentUserID uint) ([]*models.Post, error)
	Explore(ctx context.Context, limit int, currentUserID uint) ([]*models.Post, error)
	Reels(ctx context.Context, limit int, currentUserID uint) ([]*models.Post, error)
	Saved(ctx context.Context, currentUserID uint) ([]*models.Post, error)
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
	Save(ctx context.Context, userID, postID uint) error
	Unsave(ctx context.Context, userID, postID uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Feed(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&posts).Error
	return posts, err
}

// Explore returns random posts excluding the viewer's own.
func (r *postRepository) Explore(ctx context.Context, limit int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("posts.user_id != ?", currentUserID).
		Order("RANDOM()").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Reels(ctx context.Context, limit int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("posts.is_reel = ?", true).
		Order("RANDOM()").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// Saved lists the viewer's bookmarked posts, most recently saved first.
func (r *postRepository) Saved(ctx context.Context, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Joins("JOIN saved_posts ON saved_posts.post_id = posts.id").
		Where("saved_posts.user_id = ?", currentUserID).
		Order("saved_posts.created_at DESC, saved_posts.id DESC").
		Find(&posts).Error
	return posts, err
}

// applyPostDetails adds subqueries to fetch the like count and per-viewer
// flags in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as like_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as user_liked"+
			", EXISTS(SELECT 1 FROM saved_posts WHERE saved_posts.post_id = posts.id AND saved_posts.user_id = ?) as user_saved",
			currentUserID, currentUserID)
	}

	return db.Select(selectQuery + ", false as user_liked, false as user_saved")
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// Like inserts conflict-ignoring so concurrent requests never hit a
// duplicate key error; an ignored insert surfaces as ErrAlreadyLiked.
func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(&models.Like{UserID: userID, PostID: postID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyLiked
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

// Unlike is idempotent: removing an absent like succeeds.
func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
	if err == nil {
		cache.InvalidatePost(ctx, postID)
	}
	return err
}

// Save bookmarks a post; repeats are conflict-ignoring no-ops.
func (r *postRepository) Save(ctx context.Context, userID, postID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(&models.SavedPost{UserID: userID, PostID: postID}).Error
}

func (r *postRepository) Unsave(ctx context.Context, userID, postID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.SavedPost{}).Error
}
