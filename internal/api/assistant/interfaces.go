package assistant

import (
	"context"

	"github.com/futig/docgen-backend/internal/entity"
)

type AssistantUsecase interface {
	Ask(ctx context.Context, req *entity.AskRequest) (*entity.ChatResponse, error)
	Explain(ctx context.Context, req *entity.ExplainRequest) (*entity.ChatResponse, error)
	GenerateContent(ctx context.Context, req *entity.ContentGenerationRequest) (*entity.ContentGenerationResponse, error)
	Topics() []string
	Status() entity.HealthResponse
}
