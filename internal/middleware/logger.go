package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/interview-analyzer/internal/apperrors"
)

// RequestIDKey is the fiber Locals key the requestid middleware stores under.
const RequestIDKey = "requestid"

// RequestID returns the id assigned to the current request, or "".
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger writes one structured entry per request. Errors returned down
// the chain are still handled by the app's error handler; the status logged
// here is derived from the error the same way.
func RequestLogger(logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		status := c.Response().StatusCode()
		if err != nil {
			status = statusFromError(err)
		}

		entry := logger.WithFields(logrus.Fields{
			"request_id": RequestID(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    time.Since(start).String(),
		})
		if err != nil {
			entry = entry.WithError(err)
		}

		if status >= fiber.StatusBadRequest {
			entry.Warn("request failed")
		} else {
			entry.Info("request completed")
		}

		return err
	}
}

func statusFromError(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return apperrors.HTTPStatus(err)
}
