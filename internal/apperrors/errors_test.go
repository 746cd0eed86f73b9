package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := InvalidInput("analyze", nil, "Uploaded file must be a video")
	assert.Equal(t, "Uploaded file must be a video", err.Error())

	wrapped := MediaDecode("probe", errors.New("moov atom not found"), "Error processing video")
	assert.Equal(t, "Error processing video: moov atom not found", wrapped.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid input", InvalidInput("op", nil, "bad"), http.StatusBadRequest},
		{"media decode", MediaDecode("op", nil, "bad"), http.StatusInternalServerError},
		{"model call", ModelCall("op", nil, "bad"), http.StatusInternalServerError},
		{"response parse", ResponseParse("op", nil, "bad"), http.StatusInternalServerError},
		{"schema validation", SchemaValidation("op", nil, "bad"), http.StatusUnprocessableEntity},
		{"wrapped app error", fmt.Errorf("outer: %w", SchemaValidation("op", nil, "bad")), http.StatusUnprocessableEntity},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestIsKind(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("analyze: %w", ModelCall("generate", cause, "Error calling Gemini API"))

	assert.True(t, IsKind(err, KindModelCall))
	assert.False(t, IsKind(err, KindResponseParse))
	assert.False(t, IsKind(cause, KindModelCall))
	assert.ErrorIs(t, err, cause)
}
