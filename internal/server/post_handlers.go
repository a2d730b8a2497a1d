package server

import (
	"errors"
	"strconv"

	"pulse/internal/models"
	"pulse/internal/repository"
	"pulse/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
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

	post := &models.Post{
		UserID:     currentUserID(c),
		MediaURL:   mediaURL,
		MediaType:  mediaType,
		Caption:    c.FormValue("caption"),
		IsReel:     c.FormValue("is_reel") == "true",
		FilterType: c.FormValue("filter_type"),
	}
	if collab := c.FormValue("collab_user_id"); collab != "" {
		if id, parseErr := strconv.ParseUint(collab, 10, 32); parseErr == nil && id > 0 {
			collabID := uint(id)
			post.CollabUserID = &collabID
		}
	}

	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post)
}

// GetFeed handles GET /api/posts/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	p := parsePagination(c, 10)

	posts, err := s.postRepo.Feed(c.Context(), p.Limit, p.Offset, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(posts)
}

// GetUserPosts handles GET /api/posts/user/:userId
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	posts, err := s.postRepo.GetByUserID(c.Context(), userID, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(posts)
}

// GetExplore handles GET /api/posts/explore
func (s *Server) GetExplore(c *fiber.Ctx) error {
	posts, err := s.postRepo.Explore(c.Context(), 20, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(posts)
}

// GetReels handles GET /api/reels
func (s *Server) GetReels(c *fiber.Ctx) error {
	posts, err := s.postRepo.Reels(c.Context(), 10, currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(posts)
}

// GetSavedPosts handles GET /api/posts/saved
func (s *Server) GetSavedPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.Saved(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(posts)
}

// LikePost handles POST /api/posts/:postId/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
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
	if err := s.postRepo.Like(c.Context(), actorID, postID); err != nil {
		if errors.Is(err, repository.ErrAlreadyLiked) {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Post already liked"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	s.notifier.Notify(c.Context(), post.UserID, actorID, models.NotificationTypeLike, &postID)

	return c.JSON(fiber.Map{"success": true})
}

// UnlikePost handles DELETE /api/posts/:postId/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.postRepo.Unlike(c.Context(), currentUserID(c), postID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// SavePost handles POST /api/posts/:postId/save
func (s *Server) SavePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.postRepo.Save(c.Context(), currentUserID(c), postID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// UnsavePost handles DELETE /api/posts/:postId/save
func (s *Server) UnsavePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.postRepo.Unsave(c.Context(), currentUserID(c), postID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
