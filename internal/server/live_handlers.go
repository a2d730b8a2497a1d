package server

import (
	"errors"
	"strings"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const liveChatBacklog = 50

// StartLive handles POST /api/live/start
func (s *Server) StartLive(c *fiber.Ctx) error {
	stream, err := s.streamRepo.Start(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(stream)
}

// EndLive handles POST /api/live/end
func (s *Server) EndLive(c *fiber.Ctx) error {
	if err := s.streamRepo.End(c.Context(), currentUserID(c)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetLiveStreams handles GET /api/live
func (s *Server) GetLiveStreams(c *fiber.Ctx) error {
	streams, err := s.streamRepo.Live(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(streams)
}

// SendLiveMessage handles POST /api/live/:streamId/message
func (s *Server) SendLiveMessage(c *fiber.Ctx) error {
	streamID, err := s.parseID(c, "streamId")
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

	stream, err := s.streamRepo.GetByID(c.Context(), streamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Stream", streamID))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if stream.Status != models.StreamStatusLive {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Stream has ended"))
	}

	message := &models.LiveMessage{
		StreamID: streamID,
		UserID:   currentUserID(c),
		Content:  content,
	}
	if err := s.streamRepo.AddMessage(c.Context(), message); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(message)
}

// GetLiveMessages handles GET /api/live/:streamId/messages
func (s *Server) GetLiveMessages(c *fiber.Ctx) error {
	streamID, err := s.parseID(c, "streamId")
	if err != nil {
		return nil
	}

	messages, err := s.streamRepo.RecentMessages(c.Context(), streamID, liveChatBacklog)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(messages)
}
