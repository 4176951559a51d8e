package finance

import (
	"context"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
)

type ContentPipeline interface {
	Resolve(name string) (*prompt.Template, error)
	Run(ctx context.Context, t *prompt.Template, req *entity.ContentRequest) (*entity.GeneratedContent, error)
	Configured() bool
}
