package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/domain"
	"jobportal/internal/middleware"
	"jobportal/internal/service/job"
	"jobportal/internal/service/user"
)

// AdminHandler covers moderation and the user directory.
type AdminHandler struct {
	jobService  job.Service
	userService user.Service
}

func NewAdminHandler(jobService job.Service, userService user.Service) *AdminHandler {
	return &AdminHandler{
		jobService:  jobService,
		userService: userService,
	}
}

func (h *AdminHandler) ListJobs(c *fiber.Ctx) error {
	filter := publicJobFilter(c)
	filter.Status = domain.JobStatus(c.Query("status"))

	result, err := h.jobService.ListAll(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *AdminHandler) ApproveJob(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	listing, err := h.jobService.Approve(c.Context(), jobID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Job listing approved",
		"job":     listing,
	})
}

func (h *AdminHandler) DeclineJob(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	var input struct {
		Reason string `json:"reason" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	listing, err := h.jobService.Decline(c.Context(), jobID, input.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Job listing declined",
		"job":     listing,
	})
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	result, err := h.userService.List(
		c.Context(),
		domain.Role(c.Query("role")),
		c.QueryInt("page", 1),
		c.QueryInt("per_page", 10),
	)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	u, err := h.userService.Get(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

func (h *AdminHandler) SetUserActive(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	var input struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	u, err := h.userService.SetActive(c.Context(), middleware.GetCurrentUserID(c), userID, input.IsActive)
	if err != nil {
		return err
	}
	return c.JSON(u)
}
