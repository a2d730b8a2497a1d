package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoryApp(s *Server, userID uint) *fiber.App {
	app := newAuthedApp(userID)
	app.Post("/api/stories", s.CreateStory)
	app.Get("/api/stories", s.GetStories)
	return app
}

func TestCreateStory(t *testing.T) {
	s := newTestServer(t)
	user := createUser(t, s, "poster")
	app := newStoryApp(s, user.ID)

	before := time.Now()
	req := mediaRequest(t, "/api/stories", "story.png", "image/png", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var story models.Story
	decodeBody(t, resp, &story)
	assert.Equal(t, user.ID, story.UserID)
	assert.Equal(t, models.MediaTypeImage, story.MediaType)

	// Expiry lands a day out from creation.
	wantExpiry := before.Add(models.StoryLifetime)
	assert.WithinDuration(t, wantExpiry, story.ExpiresAt, time.Minute)
}

func TestGetStories_VisibilityWindow(t *testing.T) {
	s := newTestServer(t)
	viewer := createUser(t, s, "viewer")
	followee := createUser(t, s, "followee")
	stranger := createUser(t, s, "stranger")
	require.NoError(t, s.db.Create(&models.Follow{FollowerID: viewer.ID, FollowingID: followee.ID}).Error)

	now := time.Now()
	stories := []models.Story{
		{UserID: viewer.ID, MediaURL: "/uploads/mine.jpg", MediaType: models.MediaTypeImage, ExpiresAt: now.Add(time.Hour)},
		{UserID: followee.ID, MediaURL: "/uploads/theirs.jpg", MediaType: models.MediaTypeImage, ExpiresAt: now.Add(time.Hour)},
		{UserID: followee.ID, MediaURL: "/uploads/expired.jpg", MediaType: models.MediaTypeImage, ExpiresAt: now.Add(-time.Minute)},
		{UserID: stranger.ID, MediaURL: "/uploads/hidden.jpg", MediaType: models.MediaTypeImage, ExpiresAt: now.Add(time.Hour)},
	}
	for i := range stories {
		require.NoError(t, s.db.Create(&stories[i]).Error)
	}

	app := newStoryApp(s, viewer.ID)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stories", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var active []models.Story
	decodeBody(t, resp, &active)
	require.Len(t, active, 2)
	urls := []string{active[0].MediaURL, active[1].MediaURL}
	assert.ElementsMatch(t, []string{"/uploads/mine.jpg", "/uploads/theirs.jpg"}, urls)
}

func TestCreateStory_RequiresMedia(t *testing.T) {
	s := newTestServer(t)
	user := createUser(t, s, "poster")
	app := newStoryApp(s, user.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/stories", fiber.Map{}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
