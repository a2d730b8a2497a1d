package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// UserTTL bounds how stale a cached user profile may be.
	UserTTL = 5 * time.Minute
	// PostTTL bounds how stale a cached post may be.
	PostTTL = 10 * time.Minute
)

// UserKey returns the cache key for a user profile.
func UserKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

// PostKey returns the cache key for a single post.
func PostKey(postID uint) string {
	return fmt.Sprintf("post:%d", postID)
}

// Invalidate removes a key from the cache, ignoring a disabled client.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser removes the cached profile for a user.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidatePost removes the cached row for a post.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
