package assistant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/knowledge"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
)

type ContentPipeline interface {
	Resolve(name string) (*prompt.Template, error)
	Run(ctx context.Context, t *prompt.Template, req *entity.ContentRequest) (*entity.GeneratedContent, error)
	Generate(ctx context.Context, name string, payload json.RawMessage, now time.Time) (*prompt.Template, *entity.GeneratedContent, error)
	Configured() bool
}

type KnowledgeBase interface {
	Retrieve(query string) []knowledge.Match
	Get(topic string) (string, bool)
	Topics() []string
}
