package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostApp(s *Server, userID uint) *fiber.App {
	app := newAuthedApp(userID)
	app.Post("/api/posts", s.CreatePost)
	app.Get("/api/posts/feed", s.GetFeed)
	app.Get("/api/posts/explore", s.GetExplore)
	app.Get("/api/posts/saved", s.GetSavedPosts)
	app.Get("/api/posts/user/:userId", s.GetUserPosts)
	app.Post("/api/posts/:postId/like", s.LikePost)
	app.Delete("/api/posts/:postId/like", s.UnlikePost)
	app.Post("/api/posts/:postId/save", s.SavePost)
	app.Delete("/api/posts/:postId/save", s.UnsavePost)
	app.Get("/api/reels", s.GetReels)
	return app
}

func TestCreatePost(t *testing.T) {
	s := newTestServer(t)
	user := createUser(t, s, "author")
	app := newPostApp(s, user.ID)

	req := mediaRequest(t, "/api/posts", "photo.png", "image/png", map[string]string{
		"caption":     "first post",
		"filter_type": "sepia",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var post models.Post
	decodeBody(t, resp, &post)
	assert.Equal(t, user.ID, post.UserID)
	assert.Equal(t, models.MediaTypeImage, post.MediaType)
	assert.Equal(t, "first post", post.Caption)
	assert.Equal(t, "sepia", post.FilterType)
	assert.Contains(t, post.MediaURL, "/uploads/")
}

func TestCreatePost_Reel(t *testing.T) {
	s := newTestServer(t)
	user := createUser(t, s, "author")
	app := newPostApp(s, user.ID)

	req := mediaRequest(t, "/api/posts", "clip.mp4", "video/mp4", map[string]string{
		"is_reel": "true",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var post models.Post
	decodeBody(t, resp, &post)
	assert.True(t, post.IsReel)
	assert.Equal(t, models.MediaTypeVideo, post.MediaType)
}

func TestCreatePost_Rejections(t *testing.T) {
	s := newTestServer(t)
	user := createUser(t, s, "author")
	app := newPostApp(s, user.ID)

	t.Run("no media", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/posts", fiber.Map{"caption": "x"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		req := mediaRequest(t, "/api/posts", "script.exe", "application/octet-stream", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLikePost(t *testing.T) {
	s := newTestServer(t)
	author := createUser(t, s, "author")
	liker := createUser(t, s, "liker")
	post := &models.Post{UserID: author.ID, MediaURL: "/uploads/p.jpg", MediaType: models.MediaTypeImage}
	require.NoError(t, s.db.Create(post).Error)

	app := newPostApp(s, liker.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/posts/1/like", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The author receives a like notification.
	var n models.Notification
	require.NoError(t, s.db.First(&n).Error)
	assert.Equal(t, author.ID, n.RecipientID)
	assert.Equal(t, liker.ID, n.ActorID)
	assert.Equal(t, models.NotificationTypeLike, n.Type)

	t.Run("second like fails", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/posts/1/like", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "Post already liked", body.Error)
	})

	t.Run("feed shows the like", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/feed", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var feed []models.Post
		decodeBody(t, resp, &feed)
		require.Len(t, feed, 1)
		assert.Equal(t, 1, feed[0].LikeCount)
		assert.True(t, feed[0].UserLiked)
	})

	t.Run("unknown post", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/posts/99/like", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestLikeOwnPost_NoNotification(t *testing.T) {
	s := newTestServer(t)
	author := createUser(t, s, "author")
	post := &models.Post{UserID: author.ID, MediaURL: "/uploads/p.jpg", MediaType: models.MediaTypeImage}
	require.NoError(t, s.db.Create(post).Error)

	app := newPostApp(s, author.ID)
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/posts/1/like", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, s.db.Model(&models.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSaveAndListSavedPosts(t *testing.T) {
	s := newTestServer(t)
	author := createUser(t, s, "author")
	viewer := createUser(t, s, "viewer")
	post := &models.Post{UserID: author.ID, MediaURL: "/uploads/p.jpg", MediaType: models.MediaTypeImage}
	require.NoError(t, s.db.Create(post).Error)

	app := newPostApp(s, viewer.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/posts/1/save", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Saving twice is fine.
	resp, err = app.Test(jsonRequest(http.MethodPost, "/api/posts/1/save", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/saved", nil))
	require.NoError(t, err)
	var saved []models.Post
	decodeBody(t, resp, &saved)
	require.Len(t, saved, 1)
	assert.True(t, saved[0].UserSaved)

	resp, err = app.Test(jsonRequest(http.MethodDelete, "/api/posts/1/save", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/saved", nil))
	require.NoError(t, err)
	saved = nil
	decodeBody(t, resp, &saved)
	assert.Empty(t, saved)
}

func TestGetFeed_Pagination(t *testing.T) {
	s := newTestServer(t)
	author := createUser(t, s, "author")
	viewer := createUser(t, s, "viewer")
	for i := 0; i < 5; i++ {
		require.NoError(t, s.db.Create(&models.Post{
			UserID: author.ID, MediaURL: "/uploads/p.jpg", MediaType: models.MediaTypeImage,
		}).Error)
	}

	app := newPostApp(s, viewer.ID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/feed?page=1&limit=3", nil))
	require.NoError(t, err)
	var page1 []models.Post
	decodeBody(t, resp, &page1)
	assert.Len(t, page1, 3)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/feed?page=2&limit=3", nil))
	require.NoError(t, err)
	var page2 []models.Post
	decodeBody(t, resp, &page2)
	assert.Len(t, page2, 2)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/feed?page=3&limit=3", nil))
	require.NoError(t, err)
	var page3 []models.Post
	decodeBody(t, resp, &page3)
	assert.Empty(t, page3)
}

func TestGetUserPostsAndExplore(t *testing.T) {
	s := newTestServer(t)
	author := createUser(t, s, "author")
	viewer := createUser(t, s, "viewer")
	require.NoError(t, s.db.Create(&models.Post{UserID: author.ID, MediaURL: "/uploads/a.jpg", MediaType: models.MediaTypeImage}).Error)
	require.NoError(t, s.db.Create(&models.Post{UserID: viewer.ID, MediaURL: "/uploads/b.jpg", MediaType: models.MediaTypeImage}).Error)

	app := newPostApp(s, viewer.ID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/user/1", nil))
	require.NoError(t, err)
	var posts []models.Post
	decodeBody(t, resp, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, author.ID, posts[0].UserID)

	// Explore excludes the viewer's own posts.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/explore", nil))
	require.NoError(t, err)
	posts = nil
	decodeBody(t, resp, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, author.ID, posts[0].UserID)
}
