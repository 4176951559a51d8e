package entity

import (
	"encoding/json"
	"time"
)

// LegalDocumentRequest is the body of every legal generation endpoint. The
// info payload is decoded into the record type of the requested kind.
type LegalDocumentRequest struct {
	DocumentType     string             `json:"document_type"`
	Info             json.RawMessage    `json:"info"`
	PartiesInfo      json.RawMessage    `json:"parties_info,omitempty"`
	EmploymentInfo   json.RawMessage    `json:"employment_info,omitempty"`
	FoundersInfo     json.RawMessage    `json:"founders_info,omitempty"`
	CompanyInfo      json.RawMessage    `json:"company_info,omitempty"`
	UseAI            *bool              `json:"use_ai,omitempty"`
	ContentStructure *StructuredContent `json:"content_structure,omitempty"`
	CompanyLogo      string             `json:"company_logo,omitempty"`
	Format           string             `json:"format,omitempty"`
}

// Payload returns the first populated info field.
func (r *LegalDocumentRequest) Payload() json.RawMessage {
	for _, raw := range []json.RawMessage{r.Info, r.PartiesInfo, r.EmploymentInfo, r.FoundersInfo, r.CompanyInfo} {
		if len(raw) > 0 {
			return raw
		}
	}
	return nil
}

// AIEnabled defaults to true when use_ai is omitted.
func (r *LegalDocumentRequest) AIEnabled() bool {
	return r.UseAI == nil || *r.UseAI
}

// LegalDocumentResult describes a rendered legal document.
type LegalDocumentResult struct {
	Artifact           *RenderedArtifact
	Kind               ContentKind
	AIGenerated        bool
	Confidence         float64
	Degraded           bool
	GenerationDate     string
	GenerationDatetime string
	GeneratedAt        time.Time
}

// LegalPreviewResponse returns generated content without rendering it.
type LegalPreviewResponse struct {
	DocumentType     string             `json:"document_type"`
	ContentStructure *StructuredContent `json:"content_structure"`
	Confidence       float64            `json:"confidence"`
	Status           string             `json:"status"`
	Message          string             `json:"message"`
}

// TemplateInfo lists a supported document kind and its input fields.
type TemplateInfo struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	AISupported    bool     `json:"ai_supported"`
	RequiredFields []string `json:"required_fields"`
}
