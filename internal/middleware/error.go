package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobportal/internal/domain"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// ErrorHandler maps domain errors onto the wire format. Handlers can
// return domain errors directly; only handler-specific messages need
// an explicit fiber.Error.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"

	var validationErr *domain.ValidationError
	var transitionErr *domain.InvalidTransitionError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		code = fiber.StatusUnprocessableEntity
		message = validationErr.Message
		errorCode = "VALIDATION_ERROR"
	case errors.As(err, &transitionErr):
		code = fiber.StatusUnprocessableEntity
		message = transitionErr.Error()
		errorCode = "INVALID_TRANSITION"
	case errors.Is(err, domain.ErrNotFound):
		code = fiber.StatusNotFound
		message = "Resource not found"
		errorCode = "NOT_FOUND"
	case errors.Is(err, domain.ErrForbidden):
		code = fiber.StatusForbidden
		message = "You do not have access to this resource"
		errorCode = "FORBIDDEN"
	case errors.Is(err, domain.ErrInvalidCredentials):
		code = fiber.StatusUnauthorized
		message = "Invalid email or password"
		errorCode = "UNAUTHORIZED"
	case errors.Is(err, domain.ErrAccountInactive):
		code = fiber.StatusForbidden
		message = "This account has been deactivated"
		errorCode = "ACCOUNT_INACTIVE"
	case errors.Is(err, domain.ErrAlreadyApplied):
		code = fiber.StatusConflict
		message = "You have already applied to this job"
		errorCode = "ALREADY_APPLIED"
	case errors.Is(err, domain.ErrConflict):
		code = fiber.StatusConflict
		message = "Conflicting resource state"
		errorCode = "CONFLICT"
	case errors.Is(err, domain.ErrJobNotAccepting):
		code = fiber.StatusUnprocessableEntity
		message = "This job is no longer accepting applications"
		errorCode = "JOB_NOT_ACCEPTING"
	case errors.Is(err, domain.ErrCannotWithdraw):
		code = fiber.StatusUnprocessableEntity
		message = "This application can no longer be withdrawn"
		errorCode = "CANNOT_WITHDRAW"
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message

		switch code {
		case fiber.StatusBadRequest:
			errorCode = "BAD_REQUEST"
		case fiber.StatusUnauthorized:
			errorCode = "UNAUTHORIZED"
		case fiber.StatusForbidden:
			errorCode = "FORBIDDEN"
		case fiber.StatusNotFound:
			errorCode = "NOT_FOUND"
		case fiber.StatusConflict:
			errorCode = "CONFLICT"
		case fiber.StatusUnprocessableEntity:
			errorCode = "VALIDATION_ERROR"
		}
	}

	traceID := uuid.New().String()[:8]

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Conflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}

func UnprocessableEntity(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnprocessableEntity, message)
}
