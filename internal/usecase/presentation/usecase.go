package presentation

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

const manualConfidence = 1.0

// PresentationUsecase generates pitch decks and business plans.
type PresentationUsecase struct {
	pipeline ContentPipeline
	store    ArtifactStore
	now      func() time.Time
	logger   *zap.Logger
}

func NewUsecase(pipeline ContentPipeline, store ArtifactStore, now func() time.Time, logger *zap.Logger) *PresentationUsecase {
	if now == nil {
		now = time.Now
	}
	return &PresentationUsecase{
		pipeline: pipeline,
		store:    store,
		now:      now,
		logger:   logger,
	}
}

// Generate builds slide content for kind and renders a .pptx deck. The
// deck always has the full fixed slide list of its kind.
func (uc *PresentationUsecase) Generate(ctx context.Context, kind entity.ContentKind, req *entity.PresentationRequest) (*entity.PresentationResult, error) {
	t, err := uc.resolve(kind)
	if err != nil {
		return nil, err
	}
	rec, err := t.Record(req.BusinessInfo)
	if err != nil {
		return nil, err
	}

	content, confidence, degraded, err := uc.content(ctx, t, rec, req)
	if err != nil {
		return nil, err
	}

	artifact, err := uc.store.Save(ctx, entity.CategoryPresentations, t.FilePrefix, rec.Subject(), entity.FormatPPTX, &formatter.Document{
		Kind:    t.Kind,
		Title:   t.Title,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", t.Name, err)
	}

	slides := len(formatter.SlideKeys(t.Kind))
	ctxzap.Info(ctx, "presentation generated",
		zap.String("kind", string(t.Kind)),
		zap.String("file", artifact.Filename),
		zap.Int("slides", slides),
		zap.Bool("degraded", degraded),
	)

	return &entity.PresentationResult{
		Artifact:    artifact,
		Kind:        t.Kind,
		SlideCount:  slides,
		AIGenerated: req.AIEnabled(),
		Confidence:  confidence,
		Degraded:    degraded,
		GeneratedAt: uc.now(),
	}, nil
}

// Outline returns the planned slides without rendering a file.
func (uc *PresentationUsecase) Outline(ctx context.Context, kind entity.ContentKind, req *entity.PresentationRequest) ([]entity.SlideSpec, error) {
	t, err := uc.resolve(kind)
	if err != nil {
		return nil, err
	}
	rec, err := t.Record(req.BusinessInfo)
	if err != nil {
		return nil, err
	}
	content, _, _, err := uc.content(ctx, t, rec, req)
	if err != nil {
		return nil, err
	}
	return formatter.Plan(t.Kind, content), nil
}

// Templates lists the deck kinds with their slide titles.
func (uc *PresentationUsecase) Templates() []entity.PresentationTemplateInfo {
	templates := uc.pipeline.Registry().Category(entity.CategoryPresentations)
	out := make([]entity.PresentationTemplateInfo, 0, len(templates))
	for _, t := range templates {
		plan := formatter.Plan(t.Kind, nil)
		slides := make([]string, 0, len(plan))
		for _, s := range plan {
			slides = append(slides, s.Title)
		}
		out = append(out, entity.PresentationTemplateInfo{
			TemplateInfo: entity.TemplateInfo{
				Name:           t.Name,
				Description:    t.Description,
				AISupported:    uc.pipeline.Configured(),
				RequiredFields: t.FieldNames(),
			},
			Slides: slides,
		})
	}
	return out
}

func (uc *PresentationUsecase) resolve(kind entity.ContentKind) (*prompt.Template, error) {
	t, err := uc.pipeline.Resolve(string(kind))
	if err != nil {
		return nil, err
	}
	if !t.Kind.IsPresentation() {
		return nil, fmt.Errorf("%w: %q is not a presentation", entity.ErrUnsupportedContentType, kind)
	}
	return t, nil
}

func (uc *PresentationUsecase) content(ctx context.Context, t *prompt.Template, rec entity.Record, req *entity.PresentationRequest) (*entity.StructuredContent, float64, bool, error) {
	if !req.AIEnabled() {
		if req.ContentStructure != nil && req.ContentStructure.Len() > 0 {
			return req.ContentStructure, manualConfidence, false, nil
		}
		return t.FallbackContent(rec), manualConfidence, false, nil
	}

	out, err := uc.pipeline.Run(ctx, t, &entity.ContentRequest{Kind: t.Kind, Record: rec, Now: uc.now()})
	if err != nil {
		return nil, 0, false, err
	}
	return out.Content, out.Confidence, out.Degraded, nil
}
