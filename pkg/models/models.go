package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status           string    `json:"status" example:"healthy" doc:"Service health status"`
		Version          string    `json:"version" example:"1.0.0" doc:"API version"`
		Time             time.Time `json:"time" doc:"Current server time"`
		ReferenceSamples int       `json:"reference_samples" doc:"Fingerprint samples in the loaded reference dataset"`
	}
}

// Attempt is one recorded verification call
type Attempt struct {
	ID        string    `json:"id" doc:"Attempt unique identifier"`
	SessionID string    `json:"session_id,omitempty" doc:"Client session identifier from X-Session-ID"`
	Check     string    `json:"check" enum:"geo,ssid,fingerprint,hotspot" doc:"Verification that was run"`
	Success   bool      `json:"success" doc:"Verdict of the verification"`
	Detail    string    `json:"detail,omitempty" doc:"Diagnostic detail such as distance or predicted classroom"`
	CreatedAt time.Time `json:"created_at" doc:"When the verification ran"`
}

// GetAttemptRequest represents a request to fetch one attempt
type GetAttemptRequest struct {
	ID string `path:"id" doc:"Attempt ID"`
}

// GetAttemptResponse returns a recorded attempt
type GetAttemptResponse struct {
	Body *Attempt
}

// ListSessionAttemptsRequest represents a request to list a session's attempts
type ListSessionAttemptsRequest struct {
	SessionID string `path:"sessionId" doc:"Client session identifier"`
}

// ListSessionAttemptsResponse returns the attempts of a session, newest first
type ListSessionAttemptsResponse struct {
	Body struct {
		Attempts []*Attempt `json:"attempts" doc:"Recorded attempts"`
	}
}
