package server

import (
	"errors"

	"pulse/internal/models"
	"pulse/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FollowUser handles POST /api/users/:userId/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followingID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	followerID := currentUserID(c)

	if _, err := s.userRepo.GetByID(c.Context(), followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("User", followingID))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if err := s.followRepo.Follow(c.Context(), followerID, followingID); err != nil {
		switch {
		case errors.Is(err, repository.ErrSelfFollow):
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Cannot follow yourself"))
		case errors.Is(err, repository.ErrAlreadyFollowing):
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Already following"))
		default:
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
	}

	s.notifier.Notify(c.Context(), followingID, followerID, models.NotificationTypeFollow, nil)

	return c.JSON(fiber.Map{"success": true})
}

// UnfollowUser handles DELETE /api/users/:userId/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followingID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.followRepo.Unfollow(c.Context(), currentUserID(c), followingID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetFollowers handles GET /api/users/:userId/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	users, err := s.followRepo.Followers(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(users)
}

// GetFollowing handles GET /api/users/:userId/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	users, err := s.followRepo.Following(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(users)
}
