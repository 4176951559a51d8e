package validator

import (
	"encoding/json"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/futig/docgen-backend/internal/config"
	"github.com/futig/docgen-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	cfg, err := config.NewFileUploadConfig("1KB", "2KB", 3)
	require.NoError(t, err)
	return NewFileValidator(cfg)
}

func TestValidateUpload(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name  string
		files []*multipart.FileHeader
		err   error
	}{
		{"ok", []*multipart.FileHeader{{Filename: "bill.PNG", Size: 500}, {Filename: "scan.pdf", Size: 900}}, nil},
		{"none", nil, entity.ErrMissingField},
		{"too many", []*multipart.FileHeader{{Filename: "a.png", Size: 1}, {Filename: "b.png", Size: 1}, {Filename: "c.png", Size: 1}, {Filename: "d.png", Size: 1}}, entity.ErrTooManyFiles},
		{"extension", []*multipart.FileHeader{{Filename: "notes.txt", Size: 10}}, entity.ErrInvalidExtension},
		{"empty file", []*multipart.FileHeader{{Filename: "a.png", Size: 0}}, entity.ErrInvalidFile},
		{"too large", []*multipart.FileHeader{{Filename: "a.png", Size: 1001}}, entity.ErrFileTooLarge},
		{"total", []*multipart.FileHeader{{Filename: "a.png", Size: 1000}, {Filename: "b.png", Size: 1000}, {Filename: "c.png", Size: 1000}}, entity.ErrTotalSizeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUpload(tt.files)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidateBillFilesRejectsCorruptPDF(t *testing.T) {
	v := newValidator(t)

	err := v.ValidateBillFiles([]entity.BillFile{{Name: "invoice.pdf", Data: []byte("%PDF-1.4 garbage")}})
	assert.ErrorIs(t, err, entity.ErrInvalidFile)

	assert.NoError(t, v.ValidateBillFiles([]entity.BillFile{{Name: "bill.jpg", Data: []byte{0xff, 0xd8, 0xff}}}))
}

func TestValidateImages(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.ValidateImages([]entity.Attachment{{Name: "a", MIMEType: "image/png", Data: []byte{1}}}))
	assert.ErrorIs(t, v.ValidateImages(nil), entity.ErrMissingField)
	assert.ErrorIs(t, v.ValidateImages([]entity.Attachment{{Name: "a", MIMEType: "text/plain", Data: []byte{1}}}), entity.ErrInvalidFile)
	assert.ErrorIs(t, v.ValidateImages([]entity.Attachment{{Name: "a", MIMEType: "image/png", Data: make([]byte, 1025)}}), entity.ErrFileTooLarge)
}

func TestSupportedFormats(t *testing.T) {
	assert.Equal(t, []string{".bmp", ".gif", ".jpeg", ".jpg", ".pdf", ".png", ".tiff"}, SupportedFormats())
	assert.Equal(t, "image/jpeg", MIMEType("photo.JPG", nil))
}

func TestRequestValidation(t *testing.T) {
	assert.ErrorIs(t, ValidateAsk(&entity.AskRequest{Question: " hi "}), entity.ErrInvalidParameter)
	assert.NoError(t, ValidateAsk(&entity.AskRequest{Question: "How do I raise?"}))

	assert.ErrorIs(t, ValidateExplain(&entity.ExplainRequest{Clause: "abcd"}), entity.ErrInvalidParameter)
	assert.NoError(t, ValidateExplain(&entity.ExplainRequest{Clause: "Non-compete for 2 years"}))

	assert.ErrorIs(t, ValidateFinancialAnalysis(&entity.FinancialAnalysisRequest{QueryType: "astrology", Data: json.RawMessage(`{}`)}), entity.ErrUnsupportedContentType)
	assert.ErrorIs(t, ValidateFinancialAnalysis(&entity.FinancialAnalysisRequest{QueryType: entity.QueryBudgetPlanning}), entity.ErrMissingField)
	assert.NoError(t, ValidateFinancialAnalysis(&entity.FinancialAnalysisRequest{QueryType: entity.QueryBudgetPlanning, Data: json.RawMessage(`{"a":1}`)}))

	assert.ErrorIs(t, ValidateCompetitorAnalysis(&entity.CompetitorAnalysisRequest{CompanyName: "Acme"}), entity.ErrMissingField)
	assert.ErrorIs(t, ValidateExpenses([]entity.MoneyEntry{{Amount: -1}}), entity.ErrInvalidParameter)
	assert.ErrorIs(t, ValidateFundraisingStrategy(&entity.FundraisingStrategyRequest{CurrentStage: "seed"}), entity.ErrInvalidParameter)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_bill_1.png", SanitizeFilename("../tmp/my bill (1).png"))
	assert.False(t, strings.Contains(SanitizeFilename("a/b/c.pdf"), "/"))
}
