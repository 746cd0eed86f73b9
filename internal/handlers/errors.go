package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/interview-analyzer/internal/apperrors"
	"alfredoptarigan/interview-analyzer/internal/middleware"
	"alfredoptarigan/interview-analyzer/internal/models"
)

// fasthttp rejects bodies over fiber's BodyLimit before any handler runs.
const bodyTooLargeDetail = "Video file too large"

// ErrorHandler converts every error that reaches the endpoint boundary into
// a JSON body with a human-readable detail.
func ErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := apperrors.HTTPStatus(err)
		detail := err.Error()

		var fiberErr *fiber.Error
		var appErr *apperrors.AppError
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			detail = fiberErr.Message
			if code == fiber.StatusRequestEntityTooLarge {
				detail = bodyTooLargeDetail
			}
		case errors.As(err, &appErr):
			entry := logger.WithFields(logrus.Fields{
				"request_id": middleware.RequestID(c),
				"kind":       appErr.Kind,
				"op":         appErr.Op,
			}).WithError(err)
			if code >= fiber.StatusInternalServerError {
				entry.Error("Analysis error")
			} else {
				entry.Warn("Analysis rejected")
			}
		default:
			detail = "Analysis failed: " + err.Error()
			logger.WithError(err).WithField("request_id", middleware.RequestID(c)).Error("Unhandled error")
		}

		return c.Status(code).JSON(models.ErrorResponse{Detail: detail})
	}
}
