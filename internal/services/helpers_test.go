package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-analyzer/internal/models"
)

func loadValidReport(t *testing.T) (string, map[string]any) {
	t.Helper()

	data, err := os.ReadFile("testdata/valid_report.json")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal(data, &report))
	return string(data), report
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeGemini returns the queued responses in order and records each request.
type fakeGemini struct {
	mu        sync.Mutex
	responses []string
	err       error
	requests  []*models.ModelRequest
}

func (f *fakeGemini) GenerateContent(_ context.Context, req *models.ModelRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", errors.New("no response queued")
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func (f *fakeGemini) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeProber struct {
	info  *models.MediaInfo
	err   error
	calls int
}

func (f *fakeProber) Probe(_ context.Context, _ string) (*models.MediaInfo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}
