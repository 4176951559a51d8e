package entity

// BillParseRequest carries base64 encoded images.
type BillParseRequest struct {
	Images          []string `json:"images"`
	BillType        string   `json:"bill_type,omitempty"`
	ExtractTextOnly bool     `json:"extract_text_only,omitempty"`
}

// BillFile is an uploaded image or PDF after it was read from the request.
type BillFile struct {
	Name     string
	MIMEType string
	Data     []byte
}

type BillParseResult struct {
	Bills      []BillRecord
	Confidence float64
	Degraded   bool
}

type ExtractTextResponse struct {
	Texts []string `json:"extracted_text"`
}

type BillValidationResponse struct {
	Bill       BillRecord       `json:"bill"`
	Validation ValidationReport `json:"validation"`
}

type SupportedFormatsResponse struct {
	Formats []string `json:"supported_formats"`
}
