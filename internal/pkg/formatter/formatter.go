package formatter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
)

const defaultTitle = "Document"

// Document is normalized content ready to render.
type Document struct {
	Kind    entity.ContentKind
	Title   string
	Content *entity.StructuredContent
	// Logo is an inline image, either a data URI or bare base64.
	Logo string
}

// Formatter renders a Document into one file format.
type Formatter interface {
	Render(w io.Writer, doc *Document) error
	ContentType() string
	FileExtension() string
}

type Factory struct {
	tempDir string
	now     func() time.Time
}

type Option func(*Factory)

// WithTempDir sets where decoded logo images are written while rendering.
func WithTempDir(dir string) Option {
	return func(f *Factory) {
		f.tempDir = dir
	}
}

// WithClock fixes the creation date embedded in rendered files.
func WithClock(now func() time.Time) Option {
	return func(f *Factory) {
		f.now = now
	}
}

func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		tempDir: os.TempDir(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Factory) Create(format entity.OutputFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(f.tempDir, f.now), nil
	case entity.FormatPDF:
		return NewPDFFormatter(f.tempDir, f.now), nil
	case entity.FormatPPTX:
		return NewPPTXFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, format)
	}
}

func (d *Document) title() string {
	if d.Content != nil {
		if t := d.Content.String(entity.KeyDocumentTitle); t != "" {
			return t
		}
	}
	if d.Title != "" {
		return d.Title
	}
	return defaultTitle
}
