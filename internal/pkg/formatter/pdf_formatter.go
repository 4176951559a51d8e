package formatter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf
	// for the UTF-8 capable font.
	pdfFontName = "DejaVuSans"

	// Relative paths where the TTF font may live.
	// In Docker runtime we copy fonts to /app/ttf,
	// so for the compiled binary the path is ./ttf/DejaVuSans.ttf.
	pdfFontRuntimePath = "ttf/DejaVuSans.ttf"

	// Source-relative path (useful when running from repo root with `go run`).
	pdfFontSourcePath = "internal/pkg/formatter/ttf/DejaVuSans.ttf"

	pdfMargin    = 20.0
	pdfLogoWidth = 35.0
	pdfLineH     = 6.0
)

type PDFFormatter struct {
	tempDir string
	now     func() time.Time
}

func NewPDFFormatter(tempDir string, now func() time.Time) *PDFFormatter {
	return &PDFFormatter{
		tempDir: tempDir,
		now:     now,
	}
}

// resolveFontPath tries to find the DejaVuSans font in
// runtime layout (next to the binary) or source layout.
func resolveFontPath() string {
	if _, err := os.Stat(pdfFontRuntimePath); err == nil {
		return pdfFontRuntimePath
	}
	if _, err := os.Stat(pdfFontSourcePath); err == nil {
		return pdfFontSourcePath
	}
	return ""
}

// setupFont registers DejaVuSans when bundled. Without it the core Arial
// font is used and text is translated to cp1252.
func setupFont(pdf *gofpdf.Fpdf) (string, func(string) string) {
	if fontPath := resolveFontPath(); fontPath != "" {
		for _, style := range []string{"", "B", "I"} {
			pdf.AddUTF8Font(pdfFontName, style, fontPath)
		}
		return pdfFontName, func(s string) string { return s }
	}
	return "Arial", pdf.UnicodeTranslatorFromDescriptor("")
}

func (f *PDFFormatter) Render(w io.Writer, doc *Document) error {
	return withLogo(f.tempDir, doc.Logo, func(logoPath string) error {
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.SetCreationDate(f.now())
		pdf.SetCatalogSort(true)
		pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
		pdf.SetAutoPageBreak(true, pdfMargin)

		font, tr := setupFont(pdf)
		pdf.SetTitle(tr(doc.title()), false)
		pdf.AliasNbPages("")
		pdf.SetFooterFunc(func() {
			pdf.SetY(-15)
			pdf.SetFont(font, "I", 8)
			pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		})
		pdf.AddPage()

		h := documentHeader(doc)
		if logoPath != "" {
			pageW, _ := pdf.GetPageSize()
			pdf.ImageOptions(logoPath, (pageW-pdfLogoWidth)/2, pdf.GetY(), pdfLogoWidth, 0, true,
				gofpdf.ImageOptions{ImageType: imageType(logoPath), ReadDpi: true}, 0, "")
			pdf.Ln(4)
		}

		pdf.SetFont(font, "B", 16)
		pdf.MultiCell(0, 8, tr(h.Title), "", "C", false)
		if h.DateLine != "" {
			pdf.SetFont(font, "I", 10)
			pdf.MultiCell(0, pdfLineH, tr(h.DateLine), "", "C", false)
		}
		pdf.Ln(8)

		for _, b := range blocks(doc.Content) {
			if b.Heading != "" {
				pdf.SetFont(font, "B", 12)
				pdf.MultiCell(0, 7, tr(b.Heading), "", "L", false)
				pdf.Ln(1)
			}
			pdf.SetFont(font, "", 11)
			for _, p := range b.Paragraphs {
				pdf.MultiCell(0, pdfLineH, tr(p), "", "J", false)
				pdf.Ln(2)
			}
			pdf.Ln(3)
		}

		if err := pdf.Output(w); err != nil {
			return fmt.Errorf("%w: pdf: %w", entity.ErrRender, err)
		}
		return nil
	})
}

func (f *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (f *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
