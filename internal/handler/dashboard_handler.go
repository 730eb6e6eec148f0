package handler

import (
	"github.com/gofiber/fiber/v2"

	"jobportal/internal/middleware"
	"jobportal/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Employee(c *fiber.Ctx) error {
	dash, err := h.dashboardService.Employee(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dash)
}

func (h *DashboardHandler) Employer(c *fiber.Ctx) error {
	dash, err := h.dashboardService.Employer(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dash)
}

func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	dash, err := h.dashboardService.Admin(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dash)
}
