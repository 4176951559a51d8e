package bill

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/logger"
	"github.com/futig/docgen-backend/internal/pkg/normalizer"
	"github.com/futig/docgen-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// BillUsecase extracts structured data from bill images and PDFs.
type BillUsecase struct {
	pipeline  ContentPipeline
	validator FileValidator
	logger    *zap.Logger
}

func NewUsecase(pipeline ContentPipeline, validator FileValidator, logger *zap.Logger) *BillUsecase {
	return &BillUsecase{
		pipeline:  pipeline,
		validator: validator,
		logger:    logger,
	}
}

// ParseImages extracts bills from base64 encoded images.
func (uc *BillUsecase) ParseImages(ctx context.Context, req *entity.BillParseRequest) (*entity.BillParseResult, error) {
	images, err := DecodeImages(req.Images)
	if err != nil {
		return nil, err
	}
	if err := uc.validator.ValidateImages(images); err != nil {
		return nil, err
	}
	return uc.extract(ctx, images, req.BillType)
}

// ParseFiles extracts bills from uploaded images and PDFs. Unreadable PDFs
// are rejected before any generation call.
func (uc *BillUsecase) ParseFiles(ctx context.Context, files []entity.BillFile, billType string) (*entity.BillParseResult, error) {
	if err := uc.validator.ValidateBillFiles(files); err != nil {
		return nil, err
	}

	attachments := make([]entity.Attachment, 0, len(files))
	for _, f := range files {
		mimeType := f.MIMEType
		if mimeType == "" || mimeType == "application/octet-stream" {
			mimeType = validator.MIMEType(f.Name, f.Data)
		}
		attachments = append(attachments, entity.Attachment{Name: f.Name, MIMEType: mimeType, Data: f.Data})
	}
	return uc.extract(ctx, attachments, billType)
}

// ExtractText returns the raw text of the images.
func (uc *BillUsecase) ExtractText(ctx context.Context, encoded []string) ([]string, error) {
	ctx = logger.WithAction(ctx, "ExtractBillText")

	images, err := DecodeImages(encoded)
	if err != nil {
		return nil, err
	}
	if err := uc.validator.ValidateImages(images); err != nil {
		return nil, err
	}

	t, err := uc.pipeline.Resolve(string(entity.KindBillText))
	if err != nil {
		return nil, err
	}
	out, err := uc.pipeline.Run(ctx, t, &entity.ContentRequest{
		Kind:        t.Kind,
		Record:      &entity.BillPrompt{Images: len(images)},
		Attachments: images,
	})
	if err != nil {
		return nil, err
	}
	return []string{out.Text}, nil
}

// Validate checks extracted bill data.
func (uc *BillUsecase) Validate(b *entity.BillRecord) entity.ValidationReport {
	return Validate(b)
}

// SupportedFormats lists accepted upload extensions.
func (uc *BillUsecase) SupportedFormats() []string {
	return validator.SupportedFormats()
}

// Status reports whether bill parsing can call the model.
func (uc *BillUsecase) Status() entity.HealthResponse {
	return entity.HealthResponse{
		Status:       "healthy",
		Service:      "bill_parser",
		AIConfigured: uc.pipeline.Configured(),
	}
}

func (uc *BillUsecase) extract(ctx context.Context, attachments []entity.Attachment, billType string) (*entity.BillParseResult, error) {
	ctx = logger.AddFields(logger.WithAction(ctx, "ParseBills"), zap.Int("attachments", len(attachments)))

	t, err := uc.pipeline.Resolve(string(entity.KindBillExtraction))
	if err != nil {
		return nil, err
	}
	out, err := uc.pipeline.Run(ctx, t, &entity.ContentRequest{
		Kind:        t.Kind,
		Record:      &entity.BillPrompt{BillType: entity.FieldValue(strings.TrimSpace(billType)), Images: len(attachments)},
		Attachments: attachments,
	})
	if err != nil {
		return nil, err
	}

	bills := decodeBills(ctx, out.Items, out.Raw)
	ctxzap.Info(ctx, "bills extracted", zap.Int("bills", len(bills)), zap.Bool("degraded", out.Degraded))

	return &entity.BillParseResult{
		Bills:      bills,
		Confidence: out.Confidence,
		Degraded:   out.Degraded,
	}, nil
}

// decodeBills turns list items into records. Items that are not objects
// become a raw-text record so nothing the model returned is dropped.
func decodeBills(ctx context.Context, items []json.RawMessage, raw string) []entity.BillRecord {
	bills := make([]entity.BillRecord, 0, len(items))
	for i, item := range items {
		var b entity.BillRecord
		if !normalizer.IsObject(item) || json.Unmarshal(item, &b) != nil {
			ctxzap.Warn(ctx, "bill item is not an object", zap.Int("index", i))
			b = entity.BillRecord{ExtractedText: entity.StringPtr(string(item)), Confidence: normalizer.FallbackConfidence}
		}
		b.Normalize()
		bills = append(bills, b)
	}
	if len(bills) == 0 {
		b := entity.BillRecord{ExtractedText: entity.StringPtr(raw), Confidence: normalizer.FallbackConfidence}
		b.Normalize()
		bills = append(bills, b)
	}
	return bills
}

// DecodeImages accepts data URIs or bare base64 strings.
func DecodeImages(encoded []string) ([]entity.Attachment, error) {
	images := make([]entity.Attachment, 0, len(encoded))
	for i, e := range encoded {
		payload := strings.TrimSpace(e)
		if strings.HasPrefix(payload, "data:") {
			comma := strings.IndexByte(payload, ',')
			if comma < 0 {
				return nil, fmt.Errorf("%w: image %d is a malformed data URI", entity.ErrInvalidFile, i)
			}
			payload = payload[comma+1:]
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: image %d is not valid base64: %v", entity.ErrInvalidFile, i, err)
		}
		images = append(images, entity.Attachment{
			Name:     fmt.Sprintf("image_%d", i+1),
			MIMEType: http.DetectContentType(data),
			Data:     data,
		})
	}
	return images, nil
}
