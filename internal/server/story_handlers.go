package server

import (
	"errors"
	"time"

	"pulse/internal/models"
	"pulse/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// CreateStory handles POST /api/stories
func (s *Server) CreateStory(c *fiber.Ctx) error {
	file, err := c.FormFile("media")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Media file is required"))
	}

	mediaURL, mediaType, err := s.store.Save(file)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedMedia) || errors.Is(err, storage.ErrFileTooLarge) {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	now := time.Now()
	story := &models.Story{
		UserID:    currentUserID(c),
		MediaURL:  mediaURL,
		MediaType: mediaType,
		CreatedAt: now,
		ExpiresAt: now.Add(models.StoryLifetime),
	}
	if err := s.storyRepo.Create(c.Context(), story); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(story)
}

// GetStories handles GET /api/stories
func (s *Server) GetStories(c *fiber.Ctx) error {
	stories, err := s.storyRepo.Active(c.Context(), currentUserID(c), time.Now())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(stories)
}
