package presentation

import (
	"context"

	"github.com/futig/docgen-backend/internal/entity"
)

type PresentationUsecase interface {
	Generate(ctx context.Context, kind entity.ContentKind, req *entity.PresentationRequest) (*entity.PresentationResult, error)
	Outline(ctx context.Context, kind entity.ContentKind, req *entity.PresentationRequest) ([]entity.SlideSpec, error)
	Templates() []entity.PresentationTemplateInfo
}

type ArtifactCleaner interface {
	Remove(ctx context.Context, a *entity.RenderedArtifact)
}
