package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentApp(s *Server, userID uint) *fiber.App {
	app := newAuthedApp(userID)
	app.Get("/api/posts/:postId/comments", s.GetComments)
	app.Post("/api/posts/:postId/comments", s.CreateComment)
	return app
}

func seedPost(t *testing.T, s *Server, userID uint) *models.Post {
	t.Helper()

	post := &models.Post{
		UserID:    userID,
		MediaURL:  "/uploads/seed.png",
		MediaType: models.MediaTypeImage,
	}
	require.NoError(t, s.db.Create(post).Error)
	return post
}

func TestCreateComment(t *testing.T) {
	s := newTestServer(t)
	author := createUser(t, s, "author")
	commenter := createUser(t, s, "commenter")
	post := seedPost(t, s, author.ID)
	app := newCommentApp(s, commenter.ID)

	target := fmt.Sprintf("/api/posts/%d/comments", post.ID)
	resp, err := app.Test(jsonRequest(http.MethodPost, target, fiber.Map{"content": "  nice shot  "}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comment models.Comment
	decodeBody(t, resp, &comment)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, commenter.ID, comment.UserID)
	assert.Equal(t, "nice shot", comment.Content, "content should be trimmed")

	// The post author gets a comment notification.
	var notifs []models.Notification
	require.NoError(t, s.db.Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, author.ID, notifs[0].RecipientID)
	assert.Equal(t, commenter.ID, notifs[0].ActorID)
	assert.Equal(t, models.NotificationTypeComment, notifs[0].Type)
	require.NotNil(t, notifs[0].PostID)
	assert.Equal(t, post.ID, *notifs[0].PostID)
}

func TestCreateComment_Validation(t *testing.T) {
	s := newTestServer(t)
	author := createUser(t, s, "author")
	post := seedPost(t, s, author.ID)
	app := newCommentApp(s, author.ID)

	target := fmt.Sprintf("/api/posts/%d/comments", post.ID)

	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too long", strings.Repeat("a", maxCommentLen+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(http.MethodPost, target, fiber.Map{"content": tt.content}))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateComment_UnknownPost(t *testing.T) {
	s := newTestServer(t)
	user := createUser(t, s, "commenter")
	app := newCommentApp(s, user.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/posts/999/comments", fiber.Map{"content": "hello"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetComments_Ordering(t *testing.T) {
	s := newTestServer(t)
	author := createUser(t, s, "author")
	post := seedPost(t, s, author.ID)
	app := newCommentApp(s, author.ID)

	target := fmt.Sprintf("/api/posts/%d/comments", post.ID)
	for _, content := range []string{"first", "second", "third"} {
		resp, err := app.Test(jsonRequest(http.MethodPost, target, fiber.Map{"content": content}))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []models.Comment
	decodeBody(t, resp, &comments)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "third", comments[2].Content)
	assert.Equal(t, "author", comments[0].User.Username, "comments are returned with their author")
}
