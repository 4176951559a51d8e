package entity

import (
	"fmt"
	"strings"
)

// OutputFormat is the file format of a rendered artifact.
type OutputFormat string

const (
	FormatPDF      OutputFormat = "pdf"
	FormatDOCX     OutputFormat = "docx"
	FormatMarkdown OutputFormat = "md"
	FormatPPTX     OutputFormat = "pptx"
)

// ParseOutputFormat accepts an empty value as fallback.
func ParseOutputFormat(s string, fallback OutputFormat) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return fallback, nil
	case "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "pptx":
		return FormatPPTX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// Artifact categories map to subdirectories of the output directory.
const (
	CategoryLegal         = "legal"
	CategoryPresentations = "presentations"
)

// RenderedArtifact is a file written to the output directory. The caller
// streams it and decides whether to delete it.
type RenderedArtifact struct {
	Path      string
	Filename  string
	MediaType string
	Size      int64
}
