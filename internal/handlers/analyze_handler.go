package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/interview-analyzer/internal/apperrors"
	"alfredoptarigan/interview-analyzer/internal/middleware"
	"alfredoptarigan/interview-analyzer/internal/models"
	"alfredoptarigan/interview-analyzer/internal/services"
)

const videoFormField = "file"

type AnalyzeHandler struct {
	storageService  services.StorageService
	analyzerService services.AnalyzerService
	maxFileSize     int64
	logger          *logrus.Logger
}

func NewAnalyzeHandler(
	storageService services.StorageService,
	analyzerService services.AnalyzerService,
	maxFileSize int64,
	logger *logrus.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		storageService:  storageService,
		analyzerService: analyzerService,
		maxFileSize:     maxFileSize,
		logger:          logger,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	const op = "handlers.HandleAnalyze"

	fileHeader, err := c.FormFile(videoFormField)
	if err != nil {
		return apperrors.InvalidInput(op, err, "A video file must be uploaded in the 'file' field")
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, "video/") {
		return apperrors.InvalidInput(op, nil, "Uploaded file must be a video")
	}

	if fileHeader.Size > h.maxFileSize {
		return apperrors.InvalidInput(op, nil,
			fmt.Sprintf("Video file too large. Max size: %d bytes", h.maxFileSize))
	}

	tmp, err := h.storageService.SaveTemp(fileHeader)
	if err != nil {
		return apperrors.Internal(op, err, "Failed to save uploaded video")
	}
	defer func() {
		if err := tmp.Release(); err != nil {
			h.logger.WithError(err).WithField("path", tmp.Path).Warn("Failed to remove temp file")
		}
	}()

	result, err := h.analyzerService.Analyze(c.UserContext(), &models.UploadedVideo{
		RequestID: middleware.RequestID(c),
		Filename:  fileHeader.Filename,
		MIMEType:  contentType,
		Size:      tmp.Size,
		Path:      tmp.Path,
	})
	if err != nil {
		return err
	}

	c.Set("X-Video-Duration", strconv.FormatFloat(result.Duration, 'f', 2, 64))
	return c.Status(fiber.StatusOK).JSON(result.Report)
}
