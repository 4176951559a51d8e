package entity

import "encoding/json"

type AskRequest struct {
	Question    string `json:"question"`
	Context     string `json:"context,omitempty"`
	StartupType string `json:"startup_type,omitempty"`
}

type ExplainRequest struct {
	Clause       string `json:"clause"`
	DocumentType string `json:"document_type,omitempty"`
	DetailLevel  string `json:"detail_level,omitempty"`
}

// ChatResponse is the assistant answer envelope.
type ChatResponse struct {
	Answer     string   `json:"answer"`
	Sources    []string `json:"sources"`
	Confidence float64  `json:"confidence"`
}

type ContentGenerationRequest struct {
	ContentType string          `json:"content_type"`
	UserInfo    json.RawMessage `json:"user_info"`
}

type ContentGenerationResponse struct {
	ContentStructure *StructuredContent `json:"content_structure"`
	ContentType      string             `json:"content_type"`
	UserInfo         json.RawMessage    `json:"user_info"`
	Confidence       float64            `json:"confidence"`
	Degraded         bool               `json:"degraded"`
}

// KnowledgeEntry is one topic of the assistant knowledge base.
type KnowledgeEntry struct {
	Topic string `json:"topic" yaml:"topic"`
	Text  string `json:"text" yaml:"text"`
}
