package legal

import (
	"context"

	"github.com/futig/docgen-backend/internal/entity"
)

type LegalUsecase interface {
	Generate(ctx context.Context, kind string, req *entity.LegalDocumentRequest) (*entity.LegalDocumentResult, error)
	Preview(ctx context.Context, kind string, req *entity.LegalDocumentRequest) (*entity.LegalPreviewResponse, error)
	Templates() []entity.TemplateInfo
}

type ArtifactCleaner interface {
	Remove(ctx context.Context, a *entity.RenderedArtifact)
}
