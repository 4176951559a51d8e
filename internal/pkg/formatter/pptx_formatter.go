package formatter

import (
	"fmt"
	"io"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/drawing"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
)

const (
	pptxContentType   = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	pptxFileExtension = ".pptx"

	bulletPrefix = "• "
)

var accentColor = color.RGB(68, 114, 196)

// PPTXFormatter renders one slide per planned slide with a title box and a
// body box.
type PPTXFormatter struct{}

func NewPPTXFormatter() *PPTXFormatter {
	return &PPTXFormatter{}
}

func (f *PPTXFormatter) Render(w io.Writer, doc *Document) error {
	ppt := presentation.New()

	for _, s := range Plan(doc.Kind, doc.Content) {
		slide := ppt.AddSlide()
		if s.Key == "title" {
			addTitleSlide(slide, s)
			continue
		}
		addContentSlide(slide, s)
	}

	if err := ppt.Save(w); err != nil {
		return fmt.Errorf("%w: pptx: %w", entity.ErrRender, err)
	}
	return nil
}

func addTitleSlide(slide presentation.Slide, s entity.SlideSpec) {
	title := textBox(slide, 0.5, 2.2, 9, 1.4)
	addRun(title, s.Title, 44, true, dml.ST_TextAlignTypeCtr).Properties().SetSolidFill(accentColor)

	sub := textBox(slide, 0.5, 3.8, 9, 1.5)
	addRun(sub, s.Subtitle, 24, false, dml.ST_TextAlignTypeCtr)
	if s.Body != "" {
		addRun(sub, s.Body, 18, false, dml.ST_TextAlignTypeCtr)
	}
}

func addContentSlide(slide presentation.Slide, s entity.SlideSpec) {
	title := textBox(slide, 0.5, 0.4, 9, 1.1)
	addRun(title, s.Title, 32, true, dml.ST_TextAlignTypeL).Properties().SetSolidFill(accentColor)

	body := textBox(slide, 0.5, 1.7, 9, 5.3)
	addRun(body, s.Body, 20, false, dml.ST_TextAlignTypeL)
	for _, b := range s.Bullets {
		addRun(body, bulletPrefix+b, 18, false, dml.ST_TextAlignTypeL)
	}
}

// textBox places a box; coordinates are in inches.
func textBox(slide presentation.Slide, x, y, width, height float64) presentation.TextBox {
	tb := slide.AddTextBox()
	tb.Properties().SetPosition(measurement.Distance(x)*measurement.Inch, measurement.Distance(y)*measurement.Inch)
	tb.Properties().SetSize(measurement.Distance(width)*measurement.Inch, measurement.Distance(height)*measurement.Inch)
	return tb
}

func addRun(tb presentation.TextBox, text string, size float64, bold bool, align dml.ST_TextAlignType) drawing.Run {
	p := tb.AddParagraph()
	p.Properties().SetAlign(align)
	r := p.AddRun()
	r.SetText(text)
	r.Properties().SetSize(measurement.Distance(size) * measurement.Point)
	r.Properties().SetBold(bold)
	return r
}

func (f *PPTXFormatter) ContentType() string {
	return pptxContentType
}

func (f *PPTXFormatter) FileExtension() string {
	return pptxFileExtension
}
