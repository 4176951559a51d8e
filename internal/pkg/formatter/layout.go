package formatter

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/google/uuid"
)

var paragraphBreak = regexp.MustCompile(`\n[ \t]*\n`)

// block is one renderable section: an optional heading and its paragraphs.
type block struct {
	Heading    string
	Paragraphs []string
}

// header is the block placed once at the top of a paginated document.
type header struct {
	Title    string
	DateLine string
}

func documentHeader(doc *Document) header {
	h := header{Title: doc.title()}
	if date := doc.Content.String(entity.KeyDocumentDate); date != "" {
		h.DateLine = "Generated on: " + date
	}
	return h
}

// blocks walks sections in insertion order. Reserved keys and sections
// without a title or content sub-field are skipped.
func blocks(content *entity.StructuredContent) []block {
	var out []block
	for _, s := range content.Sections() {
		if entity.IsReservedKey(s.Key) {
			continue
		}
		section, ok := s.Value.(map[string]any)
		if !ok {
			continue
		}
		title, hasTitle := section["title"]
		body, hasBody := section["content"]
		if !hasTitle && !hasBody {
			continue
		}

		b := block{Heading: strings.TrimSpace(textOf(title))}
		if hasBody {
			b.Paragraphs = paragraphs(body)
		}
		if b.Heading == "" && len(b.Paragraphs) == 0 {
			continue
		}
		out = append(out, b)
	}
	return out
}

func paragraphs(v any) []string {
	var out []string
	switch body := v.(type) {
	case []any:
		for _, item := range body {
			out = append(out, paragraphs(item)...)
		}
	default:
		for _, p := range paragraphBreak.Split(textOf(body), -1) {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// textOf renders a decoded JSON scalar as display text.
func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", t), "0"), ".")
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := strings.TrimSpace(textOf(item)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		if name, ok := t["name"]; ok {
			if role, ok := t["role"]; ok && textOf(role) != "" {
				return textOf(name) + " – " + textOf(role)
			}
			return textOf(name)
		}
		return fmt.Sprint(t)
	default:
		return fmt.Sprint(t)
	}
}

var logoExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
}

// decodeLogo accepts "data:image/png;base64,..." or bare base64.
func decodeLogo(encoded string) ([]byte, string, error) {
	payload := strings.TrimSpace(encoded)
	if strings.HasPrefix(payload, "data:") {
		comma := strings.IndexByte(payload, ',')
		if comma < 0 {
			return nil, "", fmt.Errorf("%w: malformed data URI", entity.ErrInvalidLogo)
		}
		payload = payload[comma+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", entity.ErrInvalidLogo, err)
	}

	mediaType := http.DetectContentType(data)
	ext, ok := logoExtensions[mediaType]
	if !ok {
		return nil, "", fmt.Errorf("%w: unsupported image type %s", entity.ErrInvalidLogo, mediaType)
	}
	return data, ext, nil
}

// withLogo decodes the logo into a temp file, calls fn with its path and
// removes the file on every return path. fn receives "" when there is no logo.
func withLogo(dir, encoded string, fn func(path string) error) error {
	if strings.TrimSpace(encoded) == "" {
		return fn("")
	}

	data, ext, err := decodeLogo(encoded)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "logo_"+uuid.NewString()+ext)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("%w: write logo: %w", entity.ErrRender, err)
	}
	defer os.Remove(path)

	return fn(path)
}

func imageType(path string) string {
	return strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))
}
