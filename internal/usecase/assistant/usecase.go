package assistant

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/knowledge"
	"github.com/futig/docgen-backend/internal/pkg/logger"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	ExplainConfidence = 0.85

	defaultDocumentType = "legal"
	defaultDetailLevel  = "medium"
	legalPrefix         = "legal_"
	explainSource       = "legal_knowledge_base"
)

var startupTerms = []string{"startup", "business", "funding", "market", "revenue", "growth"}

// AssistantUsecase answers startup questions from a read-only knowledge
// snapshot and generates structured content on demand.
type AssistantUsecase struct {
	pipeline  ContentPipeline
	knowledge KnowledgeBase
	now       func() time.Time
	logger    *zap.Logger
}

func NewUsecase(pipeline ContentPipeline, kb KnowledgeBase, now func() time.Time, logger *zap.Logger) *AssistantUsecase {
	if now == nil {
		now = time.Now
	}
	return &AssistantUsecase{
		pipeline:  pipeline,
		knowledge: kb,
		now:       now,
		logger:    logger,
	}
}

// Ask answers a question with the knowledge entries that mention any of its
// words.
func (uc *AssistantUsecase) Ask(ctx context.Context, req *entity.AskRequest) (*entity.ChatResponse, error) {
	ctx = logger.WithAction(ctx, "AskQuestion")

	matches := uc.knowledge.Retrieve(req.Question)
	ctxzap.Debug(ctx, "knowledge retrieved", zap.Int("matches", len(matches)))

	answer, err := uc.answer(ctx, prompt.AssistantAsk, &entity.AskPrompt{
		Question:    entity.FieldValue(req.Question),
		Context:     entity.FieldValue(req.Context),
		StartupType: entity.FieldValue(req.StartupType),
		Knowledge:   entity.FieldValue(knowledge.Context(matches)),
	})
	if err != nil {
		return nil, err
	}

	return &entity.ChatResponse{
		Answer:     answer,
		Sources:    knowledge.Sources(matches),
		Confidence: Confidence(answer),
	}, nil
}

// Explain explains a clause in plain language.
func (uc *AssistantUsecase) Explain(ctx context.Context, req *entity.ExplainRequest) (*entity.ChatResponse, error) {
	ctx = logger.WithAction(ctx, "ExplainClause")

	legal, _ := uc.knowledge.Get(knowledge.TopicLegalClauses)
	answer, err := uc.answer(ctx, prompt.AssistantExplain, &entity.ExplainPrompt{
		Clause:       entity.FieldValue(req.Clause),
		DocumentType: entity.FieldValue(or(req.DocumentType, defaultDocumentType)),
		DetailLevel:  entity.FieldValue(or(req.DetailLevel, defaultDetailLevel)),
		Knowledge:    entity.FieldValue(legal),
	})
	if err != nil {
		return nil, err
	}

	return &entity.ChatResponse{
		Answer:     answer,
		Sources:    []string{explainSource},
		Confidence: ExplainConfidence,
	}, nil
}

// GenerateContent returns structured content for any object-shaped kind
// without rendering it. A "legal_" prefix on the type is accepted.
func (uc *AssistantUsecase) GenerateContent(ctx context.Context, req *entity.ContentGenerationRequest) (*entity.ContentGenerationResponse, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(req.ContentType)), legalPrefix)
	ctx = logger.AddFields(logger.WithAction(ctx, "GenerateContent"), zap.String("content_type", name))

	t, err := uc.pipeline.Resolve(name)
	if err != nil {
		return nil, err
	}
	if t.Shape != entity.ShapeObject {
		return nil, fmt.Errorf("%w: %s does not produce structured content", entity.ErrUnsupportedContentType, t.Name)
	}

	t, out, err := uc.pipeline.Generate(ctx, name, req.UserInfo, uc.now())
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "content structure generated", zap.String("template", t.Name), zap.Bool("degraded", out.Degraded))

	return &entity.ContentGenerationResponse{
		ContentStructure: out.Content,
		ContentType:      req.ContentType,
		UserInfo:         req.UserInfo,
		Confidence:       out.Confidence,
		Degraded:         out.Degraded,
	}, nil
}

// Topics lists the knowledge base topics.
func (uc *AssistantUsecase) Topics() []string {
	return uc.knowledge.Topics()
}

func (uc *AssistantUsecase) Status() entity.HealthResponse {
	return entity.HealthResponse{
		Status:       "healthy",
		Service:      "assistant",
		AIConfigured: uc.pipeline.Configured(),
	}
}

func (uc *AssistantUsecase) answer(ctx context.Context, templateName string, rec entity.Record) (string, error) {
	t, err := uc.pipeline.Resolve(templateName)
	if err != nil {
		return "", err
	}
	out, err := uc.pipeline.Run(ctx, t, &entity.ContentRequest{Kind: t.Kind, Record: rec})
	if err != nil {
		return "", err
	}
	return out.Text, nil
}

// Confidence grows with answer length up to 0.9 and adds 0.02 per startup
// term mentioned, up to 0.1. The result is rounded to two decimals.
func Confidence(answer string) float64 {
	c := math.Min(0.9, float64(utf8.RuneCountInString(answer))/1000)

	lower := strings.ToLower(answer)
	matched := 0
	for _, term := range startupTerms {
		if strings.Contains(lower, term) {
			matched++
		}
	}
	c += math.Min(0.1, float64(matched)*0.02)
	return math.Round(c*100) / 100
}

func or(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
