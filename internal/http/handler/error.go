package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"colegioapi/internal/service"
)

// errorBody is the standardized error response. Message is always safe for
// display; Error carries the underlying cause for diagnostics on 500s.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorBody{Message: message})
}

// respondServiceError translates the service error taxonomy to HTTP statuses.
// Anything outside the taxonomy is reported as a 500 with the cause attached.
func respondServiceError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return writeError(c, fiber.StatusBadRequest, ve.Message)
	}
	var ce *service.ConflictError
	if errors.As(err, &ce) {
		return writeError(c, fiber.StatusConflict, ce.Message)
	}
	var ne *service.NotFoundError
	if errors.As(err, &ne) {
		return writeError(c, fiber.StatusNotFound, ne.Message)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(errorBody{
		Message: "internal server error",
		Error:   err.Error(),
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for errors escaping the handlers (routing, body limits).
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		default:
			return writeError(c, status, "internal server error")
		}
	}
}
