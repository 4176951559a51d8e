package entity

import "encoding/json"

// GeneratedContent is the normalized output of one pipeline run. Exactly one
// of Content, Items or Text is populated, matching the prompt's shape.
type GeneratedContent struct {
	Kind       ContentKind
	Content    *StructuredContent
	Items      []json.RawMessage
	Text       string
	Raw        string
	Confidence float64
	// Degraded is set when a fixed fallback replaced unparsable output.
	Degraded bool
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is returned by service status endpoints.
type HealthResponse struct {
	Status       string `json:"status"`
	Service      string `json:"service,omitempty"`
	AIConfigured bool   `json:"ai_configured"`
}
