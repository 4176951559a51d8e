package bill

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/futig/docgen-backend/internal/config"
	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/integration/llm"
	"github.com/futig/docgen-backend/internal/pkg/normalizer"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
	"github.com/futig/docgen-backend/internal/pkg/validator"
	"github.com/futig/docgen-backend/internal/usecase/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newUsecase(t *testing.T, reply string) (*BillUsecase, *llm.MockConnector) {
	t.Helper()
	cfg, err := config.NewFileUploadConfig("1MB", "5MB", 4)
	require.NoError(t, err)

	mock := llm.NewMockConnector(zap.NewNop())
	if reply != "" {
		mock.Respond = llm.Reply(reply)
	}
	pipeline := content.NewPipeline(prompt.DefaultRegistry(), mock)
	return NewUsecase(pipeline, validator.NewFileValidator(cfg), zap.NewNop()), mock
}

func imageRequest() *entity.BillParseRequest {
	return &entity.BillParseRequest{
		Images: []string{"data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)},
	}
}

func TestValidateConsistentBill(t *testing.T) {
	b := &entity.BillRecord{
		VendorName:  entity.StringPtr("Acme"),
		Subtotal:    entity.NewAmount(1250),
		TaxAmount:   entity.NewAmount(125),
		Discount:    entity.NewAmount(50),
		TotalAmount: entity.NewAmount(1325),
		BillDate:    entity.StringPtr("2025-03-01"),
	}

	report := Validate(b)
	assert.True(t, report.IsValid)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestValidateMismatchedTotalWarns(t *testing.T) {
	b := &entity.BillRecord{
		VendorName:  entity.StringPtr("Acme"),
		Subtotal:    entity.NewAmount(1250),
		TaxAmount:   entity.NewAmount(125),
		Discount:    entity.NewAmount(50),
		TotalAmount: entity.NewAmount(1300),
	}

	report := Validate(b)
	assert.True(t, report.IsValid)
	assert.Empty(t, report.Errors)
	assert.Equal(t, []string{WarnTotalMismatch}, report.Warnings)
}

func TestValidateMissingVendorAndTotal(t *testing.T) {
	report := Validate(&entity.BillRecord{})
	assert.False(t, report.IsValid)
	assert.Equal(t, []string{ErrVendorMissing, ErrTotalMissing}, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestValidateBadDateWarns(t *testing.T) {
	b := &entity.BillRecord{
		VendorName:  entity.StringPtr("Acme"),
		TotalAmount: entity.NewAmount(10),
		BillDate:    entity.StringPtr("03/01/2025"),
	}

	report := Validate(b)
	assert.True(t, report.IsValid)
	assert.Equal(t, []string{WarnDateFormat}, report.Warnings)
}

func TestValidateDoesNotModifyRecord(t *testing.T) {
	b := &entity.BillRecord{VendorName: entity.StringPtr("Acme"), TotalAmount: entity.NewAmount(10)}
	before := *b
	Validate(b)
	assert.Equal(t, before, *b)
}

func TestParseImagesWrapsSingleObject(t *testing.T) {
	uc, mock := newUsecase(t, `{"vendor_name": "Acme", "total_amount": "1,325.00", "confidence": 0.9}`)

	res, err := uc.ParseImages(context.Background(), imageRequest())
	require.NoError(t, err)

	require.Len(t, res.Bills, 1)
	assert.Equal(t, "Acme", *res.Bills[0].VendorName)
	assert.Equal(t, 1325.0, res.Bills[0].TotalAmount.Value)
	assert.Equal(t, entity.DefaultCurrency, res.Bills[0].Currency)
	assert.False(t, res.Degraded)

	specs := mock.Specs()
	require.Len(t, specs, 1)
	require.Len(t, specs[0].Attachments, 1)
	assert.Equal(t, "image/png", specs[0].Attachments[0].MIMEType)
}

func TestParseImagesGarbageFallsBack(t *testing.T) {
	uc, _ := newUsecase(t, "The image is too blurry to read.")

	res, err := uc.ParseImages(context.Background(), imageRequest())
	require.NoError(t, err)

	assert.True(t, res.Degraded)
	assert.Equal(t, normalizer.FallbackConfidence, res.Confidence)
	require.Len(t, res.Bills, 1)
	require.NotNil(t, res.Bills[0].ExtractedText)
	assert.Equal(t, "The image is too blurry to read.", *res.Bills[0].ExtractedText)
}

func TestParseImagesRejectsBadBase64(t *testing.T) {
	uc, mock := newUsecase(t, "")

	_, err := uc.ParseImages(context.Background(), &entity.BillParseRequest{Images: []string{"not base64!"}})
	assert.ErrorIs(t, err, entity.ErrInvalidFile)
	assert.Empty(t, mock.Specs())
}

func TestParseFilesRejectsCorruptPDFBeforeCall(t *testing.T) {
	uc, mock := newUsecase(t, "")

	_, err := uc.ParseFiles(context.Background(), []entity.BillFile{
		{Name: "invoice.pdf", MIMEType: "application/pdf", Data: []byte("%PDF-1.4 garbage")},
	}, "")
	assert.ErrorIs(t, err, entity.ErrInvalidFile)
	assert.Empty(t, mock.Specs())
}

func TestExtractTextReturnsSingleText(t *testing.T) {
	uc, _ := newUsecase(t, "ACME SUPPLIES\nTotal: 110.00")

	texts, err := uc.ExtractText(context.Background(), imageRequest().Images)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACME SUPPLIES\nTotal: 110.00"}, texts)
}

func TestParseImagesTimeout(t *testing.T) {
	uc, mock := newUsecase(t, "")
	mock.Respond = llm.Fail(entity.FailureTimeout, context.DeadlineExceeded)

	_, err := uc.ParseImages(context.Background(), imageRequest())
	assert.ErrorIs(t, err, entity.ErrDeadlineExceeded)
}
