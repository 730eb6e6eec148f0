package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/middleware"
	"jobportal/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	result, err := h.notifService.List(
		c.Context(),
		middleware.GetCurrentUserID(c),
		c.Query("unread_only") == "true",
		c.QueryInt("page", 1),
		c.QueryInt("per_page", 20),
	)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notifService.UnreadCount(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	notifID, err := uuid.Parse(c.Params("notificationId"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notifService.MarkAsRead(c.Context(), middleware.GetCurrentUserID(c), notifID); err != nil {
		return err
	}
	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	if err := h.notifService.MarkAllAsRead(c.Context(), middleware.GetCurrentUserID(c)); err != nil {
		return err
	}
	return c.Status(fiber.StatusNoContent).SendString("")
}
