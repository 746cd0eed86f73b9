package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/interview-analyzer/internal/config"
	"alfredoptarigan/interview-analyzer/internal/handlers"
	"alfredoptarigan/interview-analyzer/internal/logger"
	"alfredoptarigan/interview-analyzer/internal/middleware"
	"alfredoptarigan/interview-analyzer/internal/services"
	"alfredoptarigan/interview-analyzer/web"
)

// multipart framing on top of the video itself
const bodyLimitSlack = 1 << 20

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger.WithField("env", cfg.Server.Env).Info("Config loaded successfully")

	storageService := services.NewStorageService(cfg.Storage.TempDir)
	if err := storageService.EnsureTempDir(); err != nil {
		appLogger.WithError(err).Fatal("Failed to create temp directory")
	}

	if _, err := exec.LookPath(cfg.Media.FFProbePath); err != nil {
		appLogger.WithError(err).Warn("ffprobe not found, every upload will fail to probe")
	}
	prober := services.NewFFProbeService(cfg.Media.FFProbePath, cfg.Media.ProbeTimeout)

	geminiService, err := services.NewGeminiService(cfg.Gemini, appLogger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize Gemini AI")
	}
	appLogger.WithField("model", cfg.Gemini.Model).Info("Gemini AI initialized successfully")

	analyzerService := services.NewAnalyzerService(
		geminiService,
		prober,
		services.NewPromptBuilder(),
		services.NewReportValidator(),
		appLogger,
	)
	appLogger.WithField("prompt_version", services.PromptVersion).Info("Analyzer service initialized")

	pageHandler := handlers.NewPageHandler(appLogger)
	analyzeHandler := handlers.NewAnalyzeHandler(
		storageService,
		analyzerService,
		cfg.Storage.MaxFileSize,
		appLogger,
	)

	app := fiber.New(fiber.Config{
		AppName:               "Interview Analysis API",
		DisableStartupMessage: !cfg.IsDevelopment(),
		EnablePrintRoutes:     cfg.IsDevelopment(),
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		BodyLimit:             int(cfg.Storage.MaxFileSize) + bodyLimitSlack,
		Views:                 web.NewViews(),
		ErrorHandler:          handlers.ErrorHandler(appLogger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.RequestLogger(appLogger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root: web.StaticFS(),
	}))

	handlers.RegisterRoutes(app, pageHandler, analyzeHandler,
		middleware.RateLimit(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		appLogger.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			appLogger.WithError(err).Error("Server forced to shutdown")
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	appLogger.WithField("addr", addr).Info("Server starting")

	if err := app.Listen(addr); err != nil {
		appLogger.WithError(err).Fatal("Failed to start server")
	}
}
