package legal

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/formatter"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ManualConfidence is reported for caller-supplied content.
const ManualConfidence = 1.0

// LegalUsecase generates and renders legal documents.
type LegalUsecase struct {
	pipeline ContentPipeline
	store    ArtifactStore
	now      func() time.Time
	logger   *zap.Logger
}

func NewUsecase(pipeline ContentPipeline, store ArtifactStore, now func() time.Time, logger *zap.Logger) *LegalUsecase {
	if now == nil {
		now = time.Now
	}
	return &LegalUsecase{
		pipeline: pipeline,
		store:    store,
		now:      now,
		logger:   logger,
	}
}

// Generate builds content for kind and renders it in the requested format.
func (uc *LegalUsecase) Generate(ctx context.Context, kind string, req *entity.LegalDocumentRequest) (*entity.LegalDocumentResult, error) {
	t, err := uc.resolve(kind)
	if err != nil {
		return nil, err
	}

	format, err := entity.ParseOutputFormat(req.Format, entity.FormatPDF)
	if err != nil {
		return nil, err
	}
	if format == entity.FormatPPTX {
		return nil, fmt.Errorf("%w: legal documents cannot be rendered as %s", entity.ErrUnsupportedFormat, format)
	}

	rec, err := t.Record(req.Payload())
	if err != nil {
		return nil, err
	}

	now := uc.now()
	content, confidence, degraded, err := uc.content(ctx, t, rec, req, now)
	if err != nil {
		return nil, err
	}
	content = Finalize(content, t.Kind, now)

	artifact, err := uc.store.Save(ctx, entity.CategoryLegal, t.FilePrefix, rec.Subject(), format, &formatter.Document{
		Kind:    t.Kind,
		Title:   t.Title,
		Content: content,
		Logo:    req.CompanyLogo,
	})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", t.Name, err)
	}

	ctxzap.Info(ctx, "legal document generated",
		zap.String("kind", string(t.Kind)),
		zap.String("file", artifact.Filename),
		zap.Bool("ai_generated", req.AIEnabled()),
		zap.Bool("degraded", degraded),
	)

	return &entity.LegalDocumentResult{
		Artifact:           artifact,
		Kind:               t.Kind,
		AIGenerated:        req.AIEnabled(),
		Confidence:         confidence,
		Degraded:           degraded,
		GenerationDate:     now.Format(entity.DateLayout),
		GenerationDatetime: now.Format(entity.DatetimeLayout),
		GeneratedAt:        now,
	}, nil
}

// Preview returns the finalized content without rendering a file.
func (uc *LegalUsecase) Preview(ctx context.Context, kind string, req *entity.LegalDocumentRequest) (*entity.LegalPreviewResponse, error) {
	t, err := uc.resolve(kind)
	if err != nil {
		return nil, err
	}
	rec, err := t.Record(req.Payload())
	if err != nil {
		return nil, err
	}

	now := uc.now()
	content, confidence, degraded, err := uc.content(ctx, t, rec, req, now)
	if err != nil {
		return nil, err
	}

	message := "Content generated successfully"
	if degraded {
		message = "Model output could not be parsed, template content returned"
	}
	return &entity.LegalPreviewResponse{
		DocumentType:     t.Name,
		ContentStructure: Finalize(content, t.Kind, now),
		Confidence:       confidence,
		Status:           "success",
		Message:          message,
	}, nil
}

// Templates lists the supported legal document kinds.
func (uc *LegalUsecase) Templates() []entity.TemplateInfo {
	templates := uc.pipeline.Registry().Category(entity.CategoryLegal)
	out := make([]entity.TemplateInfo, 0, len(templates))
	for _, t := range templates {
		out = append(out, entity.TemplateInfo{
			Name:           t.Name,
			Description:    t.Description,
			AISupported:    uc.pipeline.Configured(),
			RequiredFields: t.FieldNames(),
		})
	}
	return out
}

func (uc *LegalUsecase) resolve(kind string) (*prompt.Template, error) {
	t, err := uc.pipeline.Resolve(kind)
	if err != nil {
		return nil, err
	}
	if t.Category != entity.CategoryLegal {
		return nil, fmt.Errorf("%w: %q is not a legal document", entity.ErrUnsupportedContentType, kind)
	}
	return t, nil
}

// content runs generation, or takes caller content when use_ai is false.
// Without caller content the template's fixed content is used.
func (uc *LegalUsecase) content(ctx context.Context, t *prompt.Template, rec entity.Record, req *entity.LegalDocumentRequest, now time.Time) (*entity.StructuredContent, float64, bool, error) {
	if !req.AIEnabled() {
		if req.ContentStructure != nil && req.ContentStructure.Len() > 0 {
			return req.ContentStructure, ManualConfidence, false, nil
		}
		return t.FallbackContent(rec), ManualConfidence, false, nil
	}

	out, err := uc.pipeline.Run(ctx, t, &entity.ContentRequest{Kind: t.Kind, Record: rec, Now: now})
	if err != nil {
		return nil, 0, false, err
	}
	return out.Content, out.Confidence, out.Degraded, nil
}
