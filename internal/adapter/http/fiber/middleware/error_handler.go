package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
)

// ErrorHandler maps service errors to HTTP status codes.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		switch {
		case errors.Is(err, domain.ErrClientNotFound),
			errors.Is(err, domain.ErrProjectNotFound),
			errors.Is(err, domain.ErrAlertNotFound),
			errors.Is(err, domain.ErrUserNotFound):
			code = fiber.StatusNotFound
		case errors.Is(err, domain.ErrInvalidStatus),
			errors.Is(err, domain.ErrInvalidWindow),
			errors.Is(err, domain.ErrInvalidInput):
			code = fiber.StatusBadRequest
		case errors.Is(err, domain.ErrAlreadyResolved),
			errors.Is(err, domain.ErrEmailTaken):
			code = fiber.StatusConflict
		case errors.Is(err, domain.ErrInvalidCredentials):
			code = fiber.StatusUnauthorized
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
		}

		if code == fiber.StatusInternalServerError {
			log.Error("Internal Server Error", zap.Error(err), zap.String("path", c.Path()))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
