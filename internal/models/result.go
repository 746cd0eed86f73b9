package models

import "time"

// AnalysisResult is the accepted analysis. Report is the model's JSON object
// as parsed, so it is returned to the caller unchanged.
type AnalysisResult struct {
	Report   map[string]any
	Duration float64
	Attempts int
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
