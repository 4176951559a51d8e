package legal

import (
	"context"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/formatter"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
)

type ContentPipeline interface {
	Resolve(name string) (*prompt.Template, error)
	Run(ctx context.Context, t *prompt.Template, req *entity.ContentRequest) (*entity.GeneratedContent, error)
	Registry() *prompt.Registry
	Configured() bool
}

type ArtifactStore interface {
	Save(ctx context.Context, category, prefix, subject string, format entity.OutputFormat, doc *formatter.Document) (*entity.RenderedArtifact, error)
}
