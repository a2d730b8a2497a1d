package server

import (
	"errors"
	"strings"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const maxMessageLen = 2000

// GetConversations handles GET /api/messages/conversations
func (s *Server) GetConversations(c *fiber.Ctx) error {
	conversations, err := s.messageRepo.Conversations(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(conversations)
}

// GetMessages handles GET /api/messages/:userId
func (s *Server) GetMessages(c *fiber.Ctx) error {
	otherID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	userID := currentUserID(c)

	messages, err := s.messageRepo.Conversation(c.Context(), userID, otherID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// Reading a thread marks the counterpart's messages as read.
	if err := s.messageRepo.MarkConversationRead(c.Context(), userID, otherID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(messages)
}

// SendMessage handles POST /api/messages/:userId
func (s *Server) SendMessage(c *fiber.Ctx) error {
	receiverID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Message content required"))
	}
	if len(content) > maxMessageLen {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Message too long (max 2000 characters)"))
	}

	if _, err := s.userRepo.GetByID(c.Context(), receiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("User", receiverID))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	message := &models.Message{
		SenderID:   currentUserID(c),
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.messageRepo.Create(c.Context(), message); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(message)
}
