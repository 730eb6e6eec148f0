package handler

import (
	"github.com/gofiber/fiber/v2"

	"jobportal/internal/domain"
	"jobportal/internal/middleware"
	"jobportal/internal/service/company"
)

type CompanyHandler struct {
	companyService company.Service
}

func NewCompanyHandler(companyService company.Service) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	view, err := h.companyService.GetOwn(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var input domain.UpdateCompanyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	view, err := h.companyService.Update(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (h *CompanyHandler) UploadLogo(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	reader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer reader.Close()

	view, err := h.companyService.UploadLogo(c.Context(), middleware.GetCurrentUserID(c), file.Size, mimeType, reader)
	if err != nil {
		return err
	}
	return c.JSON(view)
}
