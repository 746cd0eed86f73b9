package services

import (
	_ "embed"

	"alfredoptarigan/interview-analyzer/internal/models"
)

// PromptVersion identifies the instruction template below. Bump it whenever
// prompts/interview_analysis.txt changes.
const PromptVersion = "interview-analysis/v1"

const (
	defaultVideoMIMEType = "video/mp4"
	retryInstruction     = "\n\nReturn only the JSON analysis as specified. Do NOT include markdown, transcripts, or any non-JSON text."
)

//go:embed prompts/interview_analysis.txt
var interviewAnalysisPrompt string

type PromptBuilder struct {
	instruction string
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		instruction: interviewAnalysisPrompt,
	}
}

// Instruction returns the fixed analysis instruction sent with every video.
func (pb *PromptBuilder) Instruction() string {
	return pb.instruction
}

// BuildInterviewAnalysisRequest creates the model request for one video. The
// retry variant appends an explicit JSON-only instruction.
func (pb *PromptBuilder) BuildInterviewAnalysisRequest(video []byte, mimeType string, retry bool) *models.ModelRequest {
	text := pb.Instruction()
	if retry {
		text += retryInstruction
	}

	if mimeType == "" {
		mimeType = defaultVideoMIMEType
	}

	return &models.ModelRequest{
		Role: models.RoleUser,
		Parts: []models.ModelPart{
			{Text: text},
			{InlineData: &models.InlineData{MIMEType: mimeType, Data: video}},
		},
	}
}
