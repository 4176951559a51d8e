package llm

import (
	"context"
	"sync"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	mockModel = "mock"

	mockObject = "```json\n" + `{
  "summary": {"title": "Summary", "content": "[MOCK] Generated content for local development."}
}` + "\n```"

	mockList = `[{
  "vendor_name": "Mock Supplies Inc.",
  "bill_number": "INV-0001",
  "bill_date": "2025-01-15",
  "subtotal": 100.0,
  "tax_amount": 10.0,
  "discount": 0,
  "total_amount": 110.0,
  "currency": "USD",
  "items": [{"description": "Office paper", "quantity": 10, "unit_price": 10.0, "total_price": 100.0, "category": "supplies"}],
  "confidence": 0.95,
  "bill_type": "invoice"
}]`

	mockText = "[MOCK] We recommend keeping at least 18 months of runway.\n" +
		"Key finding: infrastructure spend grows faster than revenue.\n" +
		"Next step: review vendor contracts this quarter."
)

// MockConnector answers without network calls. Respond overrides the
// canned per-shape answers.
type MockConnector struct {
	logger  *zap.Logger
	Respond func(spec *entity.PromptSpec) entity.GenerationResult

	mu    sync.Mutex
	specs []*entity.PromptSpec
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Configured() bool {
	return true
}

func (m *MockConnector) Generate(ctx context.Context, spec *entity.PromptSpec) entity.GenerationResult {
	ctxzap.Info(ctx, "[MOCK] generating content via LLM",
		zap.String("kind", string(spec.Kind)),
		zap.Stringer("shape", spec.Shape),
	)

	m.mu.Lock()
	m.specs = append(m.specs, spec)
	m.mu.Unlock()

	if m.Respond != nil {
		return m.Respond(spec)
	}

	switch spec.Shape {
	case entity.ShapeList:
		return entity.GenerationResult{Model: mockModel, Text: mockList}
	case entity.ShapeText:
		return entity.GenerationResult{Model: mockModel, Text: mockText}
	default:
		return entity.GenerationResult{Model: mockModel, Text: mockObject}
	}
}

// Specs returns the prompts received so far.
func (m *MockConnector) Specs() []*entity.PromptSpec {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.PromptSpec, len(m.specs))
	copy(out, m.specs)
	return out
}

func (m *MockConnector) Close() error {
	return nil
}

// Reply is a Respond helper returning fixed text.
func Reply(text string) func(*entity.PromptSpec) entity.GenerationResult {
	return func(*entity.PromptSpec) entity.GenerationResult {
		return entity.GenerationResult{Model: mockModel, Text: text}
	}
}

// Fail is a Respond helper returning a fixed failure.
func Fail(failure entity.GenerationFailure, cause error) func(*entity.PromptSpec) entity.GenerationResult {
	return func(*entity.PromptSpec) entity.GenerationResult {
		return entity.GenerationResult{Model: mockModel, Failure: failure, Cause: cause}
	}
}
