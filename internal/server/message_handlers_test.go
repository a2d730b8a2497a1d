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

func newMessageApp(s *Server, userID uint) *fiber.App {
	app := newAuthedApp(userID)
	app.Get("/api/messages/conversations", s.GetConversations)
	app.Get("/api/messages/:userId", s.GetMessages)
	app.Post("/api/messages/:userId", s.SendMessage)
	return app
}

func TestSendMessage(t *testing.T) {
	s := newTestServer(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")
	app := newMessageApp(s, alice.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/messages/2", fiber.Map{
		"content": "hello bob",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var msg models.Message
	decodeBody(t, resp, &msg)
	assert.Equal(t, alice.ID, msg.SenderID)
	assert.Equal(t, bob.ID, msg.ReceiverID)
	assert.Equal(t, "hello bob", msg.Content)
	assert.False(t, msg.IsRead)

	t.Run("empty content", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/messages/2", fiber.Map{"content": "  "}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/messages/99", fiber.Map{"content": "hi"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetMessages_MarksRead(t *testing.T) {
	s := newTestServer(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")
	base := time.Now().Add(-time.Hour)
	require.NoError(t, s.db.Create(&models.Message{SenderID: bob.ID, ReceiverID: alice.ID, Content: "hey", CreatedAt: base}).Error)
	require.NoError(t, s.db.Create(&models.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "hi", CreatedAt: base.Add(time.Minute)}).Error)

	app := newMessageApp(s, alice.ID)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/messages/2", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var thread []models.Message
	decodeBody(t, resp, &thread)
	require.Len(t, thread, 2)
	assert.Equal(t, "hey", thread[0].Content)
	assert.Equal(t, "hi", thread[1].Content)

	// Bob's message is now read.
	var got models.Message
	require.NoError(t, s.db.Where("sender_id = ?", bob.ID).First(&got).Error)
	assert.True(t, got.IsRead)
}

func TestGetConversations(t *testing.T) {
	s := newTestServer(t)
	alice := createUser(t, s, "alice")
	bob := createUser(t, s, "bob")
	carol := createUser(t, s, "carol")
	base := time.Now().Add(-time.Hour)
	require.NoError(t, s.db.Create(&models.Message{SenderID: alice.ID, ReceiverID: bob.ID, Content: "to bob", CreatedAt: base}).Error)
	require.NoError(t, s.db.Create(&models.Message{SenderID: carol.ID, ReceiverID: alice.ID, Content: "from carol", CreatedAt: base.Add(time.Minute)}).Error)

	app := newMessageApp(s, alice.ID)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/messages/conversations", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var conversations []models.Conversation
	decodeBody(t, resp, &conversations)
	require.Len(t, conversations, 2)
	assert.Equal(t, carol.ID, conversations[0].UserID)
	assert.Equal(t, "from carol", conversations[0].LastMessage)
	assert.Equal(t, bob.ID, conversations[1].UserID)
	assert.Equal(t, "to bob", conversations[1].LastMessage)
}
