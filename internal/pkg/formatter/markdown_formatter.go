package formatter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/futig/docgen-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

// MarkdownFormatter writes headings and paragraphs. Logos are not embedded.
type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Render(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)

	h := documentHeader(doc)
	fmt.Fprintf(bw, "# %s\n\n", h.Title)
	if h.DateLine != "" {
		fmt.Fprintf(bw, "_%s_\n\n", h.DateLine)
	}

	for _, b := range blocks(doc.Content) {
		if b.Heading != "" {
			fmt.Fprintf(bw, "## %s\n\n", b.Heading)
		}
		for _, p := range b.Paragraphs {
			fmt.Fprintf(bw, "%s\n\n", p)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: markdown: %w", entity.ErrRender, err)
	}
	return nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
