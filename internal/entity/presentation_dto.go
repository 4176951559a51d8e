package entity

import (
	"encoding/json"
	"time"
)

// PresentationRequest is the body of the pitch deck and business plan endpoints.
type PresentationRequest struct {
	BusinessInfo     json.RawMessage    `json:"business_info"`
	UseAI            *bool              `json:"use_ai,omitempty"`
	ContentStructure *StructuredContent `json:"content_structure,omitempty"`
}

func (r *PresentationRequest) AIEnabled() bool {
	return r.UseAI == nil || *r.UseAI
}

// PresentationResult describes a rendered slide deck.
type PresentationResult struct {
	Artifact    *RenderedArtifact
	Kind        ContentKind
	SlideCount  int
	AIGenerated bool
	Confidence  float64
	Degraded    bool
	GeneratedAt time.Time
}

// SlideSpec is one planned slide: a title, a primary body line and bullets.
type SlideSpec struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Body     string   `json:"body"`
	Bullets  []string `json:"bullets"`
}

// PresentationPreviewResponse returns planned slides without rendering a deck.
type PresentationPreviewResponse struct {
	DocumentType string      `json:"document_type"`
	Slides       []SlideSpec `json:"slides"`
	Status       string      `json:"status"`
}

// PresentationTemplateInfo lists a deck kind with its fixed slide titles.
type PresentationTemplateInfo struct {
	TemplateInfo
	Slides []string `json:"slides"`
}
