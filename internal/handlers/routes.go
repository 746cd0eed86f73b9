package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the page routes, the health check and the analysis
// endpoint. analyzeLimiter guards POST /analyze.
func RegisterRoutes(app *fiber.App, pages *PageHandler, analyze *AnalyzeHandler, analyzeLimiter fiber.Handler) {
	app.Get("/", pages.HandleIndex)
	app.Get("/examples", pages.HandleExamples)
	app.Get("/upload", pages.HandleUpload)
	app.Get("/about", pages.HandleAbout)
	app.Get("/health", pages.HandleHealth)

	app.Post("/analyze", analyzeLimiter, analyze.HandleAnalyze)
}
