package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/unidoc/unioffice/common"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"

	docxLogoWidth measurement.Distance = 1.5 * measurement.Inch
)

type DOCXFormatter struct {
	tempDir string
	now     func() time.Time
}

func NewDOCXFormatter(tempDir string, now func() time.Time) *DOCXFormatter {
	return &DOCXFormatter{
		tempDir: tempDir,
		now:     now,
	}
}

func (f *DOCXFormatter) Render(w io.Writer, d *Document) error {
	return withLogo(f.tempDir, d.Logo, func(logoPath string) error {
		doc := document.New()
		defer doc.Close()

		h := documentHeader(d)
		doc.CoreProperties.SetTitle(h.Title)
		doc.CoreProperties.SetCreated(f.now())

		if logoPath != "" {
			if err := addDOCXLogo(doc, logoPath); err != nil {
				return err
			}
		}

		titlePar := doc.AddParagraph()
		titlePar.SetStyle("Title")
		titlePar.Properties().SetAlignment(wml.ST_JcCenter)
		titlePar.AddRun().AddText(h.Title)

		if h.DateLine != "" {
			datePar := doc.AddParagraph()
			datePar.Properties().SetAlignment(wml.ST_JcCenter)
			run := datePar.AddRun()
			run.Properties().SetItalic(true)
			run.AddText(h.DateLine)
		}

		doc.AddParagraph()

		for _, b := range blocks(d.Content) {
			if b.Heading != "" {
				headPar := doc.AddParagraph()
				headPar.SetStyle("Heading2")
				headPar.AddRun().AddText(b.Heading)
			}
			for _, p := range b.Paragraphs {
				bodyPar := doc.AddParagraph()
				bodyPar.Properties().SetAlignment(wml.ST_JcBoth)
				bodyPar.AddRun().AddText(p)
			}
		}

		if err := doc.Save(w); err != nil {
			return fmt.Errorf("%w: docx: %w", entity.ErrRender, err)
		}
		return nil
	})
}

func addDOCXLogo(doc *document.Document, path string) error {
	img, err := common.ImageFromFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrInvalidLogo, err)
	}
	ref, err := doc.AddImage(img)
	if err != nil {
		return fmt.Errorf("%w: docx logo: %w", entity.ErrRender, err)
	}

	par := doc.AddParagraph()
	par.Properties().SetAlignment(wml.ST_JcCenter)
	inline, err := par.AddRun().AddDrawingInline(ref)
	if err != nil {
		return fmt.Errorf("%w: docx logo: %w", entity.ErrRender, err)
	}

	height := docxLogoWidth
	if img.Size.X > 0 {
		height = docxLogoWidth * measurement.Distance(img.Size.Y) / measurement.Distance(img.Size.X)
	}
	inline.SetSize(docxLogoWidth, height)
	return nil
}

func (f *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (f *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
