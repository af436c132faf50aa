package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/domain"
)

// ErrorHandler maps errors escaping a handler to a JSON error body.
// Domain errors keep their caller-visible status; anything else is a 500
// and gets logged.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		case errors.Is(err, domain.ErrDeviceNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, domain.ErrInvalidCommand):
			code = fiber.StatusBadRequest
		}

		if code == fiber.StatusInternalServerError {
			log.Error("Internal Server Error", zap.Error(err), zap.String("path", c.Path()))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
