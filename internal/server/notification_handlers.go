package server

import (
	"pulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	notifications, err := s.notificationRepo.GetByRecipient(c.Context(), currentUserID(c), 20)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(notifications)
}

// MarkNotificationRead handles PUT /api/notifications/:id/read
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.notificationRepo.MarkRead(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// MarkAllNotificationsRead handles PUT /api/notifications/read
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	if err := s.notificationRepo.MarkAllRead(c.Context(), currentUserID(c)); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
