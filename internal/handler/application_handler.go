package handler

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/domain"
	"jobportal/internal/middleware"
	"jobportal/internal/service/application"
)

type ApplicationHandler struct {
	appService application.Service
}

func NewApplicationHandler(appService application.Service) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

func applicationIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("applicationId"))
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid application ID")
	}
	return id, nil
}

// Apply submits the current employee's application for a job. The body
// is JSON, or multipart when a tailored resume file rides along.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	var input domain.SubmitApplicationInput
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if v := c.FormValue("cover_letter"); v != "" {
			input.CoverLetter = &v
		}
		if v := c.FormValue("answers"); v != "" {
			if err := json.Unmarshal([]byte(v), &input.Answers); err != nil {
				return middleware.BadRequest("Answers must be a JSON object of question/answer pairs")
			}
		}
		if file, err := c.FormFile("resume"); err == nil {
			mimeType := file.Header.Get("Content-Type")
			if mimeType == "" {
				mimeType = "application/octet-stream"
			}
			reader, err := file.Open()
			if err != nil {
				return middleware.BadRequest("Failed to read resume file")
			}
			defer reader.Close()
			input.Resume = reader
			input.ResumeSize = file.Size
			input.ResumeMime = mimeType
		}
	} else if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	app, err := h.appService.Submit(c.Context(), middleware.GetCurrentUserID(c), jobID, input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *ApplicationHandler) ListOwn(c *fiber.Ctx) error {
	result, err := h.appService.ListOwn(
		c.Context(),
		middleware.GetCurrentUserID(c),
		domain.ApplicationStatus(c.Query("status")),
		c.QueryInt("page", 1),
		c.QueryInt("per_page", 10),
	)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *ApplicationHandler) GetOwn(c *fiber.Ctx) error {
	appID, err := applicationIDParam(c)
	if err != nil {
		return err
	}

	app, err := h.appService.GetOwn(c.Context(), middleware.GetCurrentUserID(c), appID)
	if err != nil {
		return err
	}
	return c.JSON(app)
}

func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	appID, err := applicationIDParam(c)
	if err != nil {
		return err
	}

	if err := h.appService.Withdraw(c.Context(), middleware.GetCurrentUserID(c), appID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Application withdrawn"})
}

// Employer side.

func (h *ApplicationHandler) ListForCompany(c *fiber.Ctx) error {
	filter := domain.ApplicationFilter{
		Status:  domain.ApplicationStatus(c.Query("status")),
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 10),
	}
	if jobIDStr := c.Query("job_id"); jobIDStr != "" {
		jobID, err := uuid.Parse(jobIDStr)
		if err != nil {
			return middleware.BadRequest("Invalid job ID filter")
		}
		filter.JobListingID = jobID
	}

	result, err := h.appService.ListForCompany(c.Context(), middleware.GetCurrentUserID(c), filter)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *ApplicationHandler) GetForEmployer(c *fiber.Ctx) error {
	appID, err := applicationIDParam(c)
	if err != nil {
		return err
	}

	app, err := h.appService.GetForEmployer(c.Context(), middleware.GetCurrentUserID(c), appID)
	if err != nil {
		return err
	}
	return c.JSON(app)
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	appID, err := applicationIDParam(c)
	if err != nil {
		return err
	}

	var input domain.UpdateApplicationStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	app, err := h.appService.UpdateStatus(c.Context(), middleware.GetCurrentUserID(c), appID, input)
	if err != nil {
		return err
	}
	return c.JSON(app)
}
