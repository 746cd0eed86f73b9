package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/interview-analyzer/internal/models"
)

const pageLayout = "layouts/main"

type PageHandler struct {
	logger *logrus.Logger
}

func NewPageHandler(logger *logrus.Logger) *PageHandler {
	return &PageHandler{logger: logger}
}

func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return h.render(c, "index", "Home", "Failed to render homepage")
}

func (h *PageHandler) HandleExamples(c *fiber.Ctx) error {
	return h.render(c, "examples", "Examples", "Failed to render examples page")
}

func (h *PageHandler) HandleUpload(c *fiber.Ctx) error {
	return h.render(c, "upload", "Analyze", "Failed to render upload page")
}

func (h *PageHandler) HandleAbout(c *fiber.Ctx) error {
	return h.render(c, "about", "About", "Failed to render about page")
}

func (h *PageHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status: "healthy",
		Time:   time.Now(),
	})
}

func (h *PageHandler) render(c *fiber.Ctx, name, title, failure string) error {
	if err := c.Render(name, fiber.Map{"Title": title}, pageLayout); err != nil {
		h.logger.WithError(err).WithField("template", name).Error("Error rendering template")
		return fiber.NewError(fiber.StatusInternalServerError, failure)
	}
	return nil
}
