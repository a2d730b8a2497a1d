package server

import (
	"errors"
	"strings"

	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const maxCommentLen = 2000

// GetComments handles GET /api/posts/:postId/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	comments, err := s.commentRepo.GetByPostID(c.Context(), postID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(comments)
}

// CreateComment handles POST /api/posts/:postId/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
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
			models.NewValidationError("Comment content is required"))
	}
	if len(content) > maxCommentLen {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Comment too long (max 2000 characters)"))
	}

	post, err := s.postRepo.GetByID(c.Context(), postID, 0)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Post", postID))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	actorID := currentUserID(c)
	comment := &models.Comment{
		PostID:  postID,
		UserID:  actorID,
		Content: content,
	}
	if err := s.commentRepo.Create(c.Context(), comment); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	s.notifier.Notify(c.Context(), post.UserID, actorID, models.NotificationTypeComment, &postID)

	return c.JSON(comment)
}
