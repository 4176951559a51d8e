package content

import (
	"context"

	"github.com/futig/docgen-backend/internal/entity"
)

// Generator sends one prompt to the generation endpoint.
type Generator interface {
	Generate(ctx context.Context, spec *entity.PromptSpec) entity.GenerationResult
	Configured() bool
}
