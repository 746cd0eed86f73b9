package services

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"alfredoptarigan/interview-analyzer/internal/apperrors"
	"alfredoptarigan/interview-analyzer/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, video *models.UploadedVideo) (*models.AnalysisResult, error)
}

// attemptState is the position in the parse-retry flow. A request starts in
// stateFirstAttempt and moves to stateRetry at most once.
type attemptState int

const (
	stateFirstAttempt attemptState = iota
	stateRetry
)

func (s attemptState) String() string {
	if s == stateRetry {
		return "retry"
	}
	return "first_attempt"
}

// next returns the state to move to after a response failed to parse, and
// false when the retry budget is spent.
func (s attemptState) next() (attemptState, bool) {
	if s == stateFirstAttempt {
		return stateRetry, true
	}
	return s, false
}

type analyzerService struct {
	geminiService GeminiService
	prober        MediaProber
	promptBuilder *PromptBuilder
	validator     *ReportValidator
	logger        *logrus.Logger
}

func NewAnalyzerService(
	geminiService GeminiService,
	prober MediaProber,
	promptBuilder *PromptBuilder,
	validator *ReportValidator,
	logger *logrus.Logger,
) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		prober:        prober,
		promptBuilder: promptBuilder,
		validator:     validator,
		logger:        logger,
	}
}

func (a *analyzerService) Analyze(ctx context.Context, video *models.UploadedVideo) (*models.AnalysisResult, error) {
	const op = "analyzer.Analyze"

	entry := a.logger.WithFields(logrus.Fields{
		"request_id": video.RequestID,
		"filename":   video.Filename,
		"size_bytes": video.Size,
	})

	info, err := a.prober.Probe(ctx, video.Path)
	if err != nil {
		entry.WithError(err).Error("Error validating video")
		return nil, apperrors.MediaDecode(op, err, "Error processing video")
	}
	entry.WithFields(logrus.Fields{
		"duration_seconds": info.Duration,
		"video_codec":      info.VideoStream,
		"has_audio":        info.HasAudio,
	}).Info("Video validated")

	data, err := os.ReadFile(video.Path)
	if err != nil {
		return nil, apperrors.Internal(op, err, "Failed to read uploaded video")
	}

	parsed, cleaned, attempts, err := a.requestAnalysis(ctx, data, video.MIMEType, entry)
	if err != nil {
		return nil, err
	}

	if _, err := a.validator.Validate([]byte(cleaned)); err != nil {
		entry.WithError(err).Error("Response does not match AnalysisReport model")
		return nil, apperrors.SchemaValidation(op, err, "Invalid analysis structure")
	}

	// Validate guarantees a JSON object.
	report := parsed.(map[string]any)

	entry.WithField("attempts", attempts).Info("Analysis completed")
	return &models.AnalysisResult{
		Report:   report,
		Duration: info.Duration,
		Attempts: attempts,
	}, nil
}

// requestAnalysis calls the model until the response parses as JSON, with a
// single retry. It returns the parsed value, the cleaned text and the number
// of model calls made.
func (a *analyzerService) requestAnalysis(ctx context.Context, video []byte, mimeType string, entry *logrus.Entry) (any, string, int, error) {
	const op = "analyzer.requestAnalysis"

	state := stateFirstAttempt
	attempts := 0

	for {
		req := a.promptBuilder.BuildInterviewAnalysisRequest(video, mimeType, state == stateRetry)
		attempts++

		stateEntry := entry.WithFields(logrus.Fields{
			"attempt":      attempts,
			"state":        state.String(),
			"prompt_chars": len(req.Text()),
		})

		raw, err := a.geminiService.GenerateContent(ctx, req)
		if err != nil {
			stateEntry.WithError(err).Error("Gemini API call failed")
			return nil, "", attempts, apperrors.ModelCall(op, err, "Error calling Gemini API")
		}
		stateEntry.WithField("excerpt", Excerpt(raw, logExcerptLen)).Debug("Gemini API raw response")

		cleaned := StripMarkdown(raw)
		parsed, err := ParseJSON(cleaned)
		if err == nil {
			return parsed, cleaned, attempts, nil
		}

		nextState, ok := state.next()
		if !ok {
			stateEntry.WithField("excerpt", Excerpt(cleaned, logExcerptLen)).Error("Failed to parse retry response as JSON")
			return nil, "", attempts, apperrors.ResponseParse(op, nil,
				"Invalid response from Gemini API after retry: "+Excerpt(cleaned, detailExcerptLen))
		}

		stateEntry.Warn("Non-JSON response detected after cleaning, attempting retry")
		state = nextState
	}
}
