package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/domain"
	"jobportal/internal/middleware"
	"jobportal/internal/service/job"
)

type JobHandler struct {
	jobService job.Service
}

func NewJobHandler(jobService job.Service) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func publicJobFilter(c *fiber.Ctx) domain.JobFilter {
	return domain.JobFilter{
		Search:          c.Query("search"),
		Location:        c.Query("location"),
		Category:        c.Query("category"),
		JobType:         domain.JobType(c.Query("job_type")),
		ExperienceLevel: domain.ExperienceLevel(c.Query("experience_level")),
		Page:            c.QueryInt("page", 1),
		PerPage:         c.QueryInt("per_page", 10),
	}
}

// List is the public job board.
func (h *JobHandler) List(c *fiber.Ctx) error {
	result, err := h.jobService.ListPublic(c.Context(), publicJobFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *JobHandler) GetBySlug(c *fiber.Ctx) error {
	listing, err := h.jobService.ViewBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(listing)
}

func (h *JobHandler) Recent(c *fiber.Ctx) error {
	jobs, err := h.jobService.Recent(c.Context(), c.QueryInt("limit", 6))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobs})
}

func (h *JobHandler) FilterOptions(c *fiber.Ctx) error {
	opts, err := h.jobService.FilterOptions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(opts)
}

func (h *JobHandler) PublicStats(c *fiber.Ctx) error {
	stats, err := h.jobService.PublicStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Employer-side operations below. Ownership is enforced in the
// service; the route group enforces the role.

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateJobInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	listing, err := h.jobService.Create(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(listing)
}

func jobIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid job ID")
	}
	return id, nil
}

func (h *JobHandler) GetOwn(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	listing, err := h.jobService.GetOwn(c.Context(), middleware.GetCurrentUserID(c), jobID)
	if err != nil {
		return err
	}
	return c.JSON(listing)
}

func (h *JobHandler) ListOwn(c *fiber.Ctx) error {
	result, err := h.jobService.ListOwn(
		c.Context(),
		middleware.GetCurrentUserID(c),
		domain.JobStatus(c.Query("status")),
		c.QueryInt("page", 1),
		c.QueryInt("per_page", 10),
	)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	var input domain.UpdateJobInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	listing, err := h.jobService.Update(c.Context(), middleware.GetCurrentUserID(c), jobID, input)
	if err != nil {
		return err
	}
	return c.JSON(listing)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	if err := h.jobService.Delete(c.Context(), middleware.GetCurrentUserID(c), jobID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Job listing deleted"})
}

func (h *JobHandler) Submit(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	listing, err := h.jobService.Submit(c.Context(), middleware.GetCurrentUserID(c), jobID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Job listing submitted for review",
		"job":     listing,
	})
}

func (h *JobHandler) Close(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	listing, err := h.jobService.Close(c.Context(), middleware.GetCurrentUserID(c), jobID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Job listing closed",
		"job":     listing,
	})
}
