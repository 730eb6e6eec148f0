package handler

import (
	"github.com/gofiber/fiber/v2"

	"jobportal/internal/domain"
	"jobportal/internal/middleware"
	"jobportal/internal/service/profile"
)

type ProfileHandler struct {
	profileService profile.Service
}

func NewProfileHandler(profileService profile.Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	view, err := h.profileService.Get(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var input domain.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	view, err := h.profileService.Update(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
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

	view, err := h.profileService.UploadAvatar(c.Context(), middleware.GetCurrentUserID(c), file.Size, mimeType, reader)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (h *ProfileHandler) UploadCV(c *fiber.Ctx) error {
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

	view, err := h.profileService.UploadCV(c.Context(), middleware.GetCurrentUserID(c), file.Size, mimeType, reader)
	if err != nil {
		return err
	}
	return c.JSON(view)
}
