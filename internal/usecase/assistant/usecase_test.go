package assistant

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/integration/llm"
	"github.com/futig/docgen-backend/internal/pkg/knowledge"
	"github.com/futig/docgen-backend/internal/pkg/normalizer"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
	"github.com/futig/docgen-backend/internal/usecase/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUsecase(reply string) (*AssistantUsecase, *llm.MockConnector) {
	gen := llm.NewMockConnector(zap.NewNop())
	if reply != "" {
		gen.Respond = llm.Reply(reply)
	}
	kb := knowledge.NewSnapshot(knowledge.Builtin()...)
	now := func() time.Time { return time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC) }
	return NewUsecase(content.NewPipeline(prompt.DefaultRegistry(), gen), kb, now, zap.NewNop()), gen
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   float64
	}{
		{name: "empty", answer: "", want: 0},
		{name: "short with terms", answer: "Startup funding depends on market growth.", want: 0.12},
		{name: "long capped", answer: strings.Repeat("x", 2000), want: 0.9},
		{name: "long with all terms", answer: strings.Repeat("x", 2000) + " startup business funding market revenue growth", want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Confidence(tt.answer), 1e-9)
		})
	}
}

func TestAskUsesRetrievedKnowledge(t *testing.T) {
	uc, gen := newUsecase("Raise a seed round once you have early revenue.")

	res, err := uc.Ask(context.Background(), &entity.AskRequest{Question: "Explain vesting schedules"})
	require.NoError(t, err)

	assert.Equal(t, []string{knowledge.TopicLegalClauses}, res.Sources)
	assert.Equal(t, Confidence(res.Answer), res.Confidence)

	specs := gen.Specs()
	require.Len(t, specs, 1)
	assert.Contains(t, specs[0].Instruction, "Explain vesting schedules")
	assert.Contains(t, specs[0].Instruction, "From legal_clauses:")
}

func TestExplainUsesLegalClauses(t *testing.T) {
	uc, gen := newUsecase("It means the founder earns shares over time.")

	res, err := uc.Explain(context.Background(), &entity.ExplainRequest{Clause: "four-year vesting with a one-year cliff"})
	require.NoError(t, err)

	assert.Equal(t, ExplainConfidence, res.Confidence)
	assert.Equal(t, []string{"legal_knowledge_base"}, res.Sources)

	specs := gen.Specs()
	require.Len(t, specs, 1)
	assert.Contains(t, specs[0].Instruction, "vesting schedules")
	assert.Contains(t, specs[0].Instruction, "- Detail Level: medium")
}

func TestGenerateContentAcceptsLegalPrefix(t *testing.T) {
	uc, _ := newUsecase(`{"title": {"title": "NDA", "content": "Between Acme and Globex"}}`)

	res, err := uc.GenerateContent(context.Background(), &entity.ContentGenerationRequest{
		ContentType: "legal_nda",
		UserInfo:    json.RawMessage(`{"company_name": "Acme"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "legal_nda", res.ContentType)
	assert.Equal(t, normalizer.ParsedConfidence, res.Confidence)
	assert.Equal(t, map[string]any{"title": "NDA", "content": "Between Acme and Globex"}, res.ContentStructure.Section("title"))
}

func TestGenerateContentRejectsNonObjectKinds(t *testing.T) {
	uc, gen := newUsecase("")

	for _, kind := range []string{"haiku", prompt.AssistantAsk, "bill_extraction"} {
		_, err := uc.GenerateContent(context.Background(), &entity.ContentGenerationRequest{ContentType: kind})
		assert.ErrorIs(t, err, entity.ErrUnsupportedContentType, kind)
	}
	assert.Empty(t, gen.Specs())
}
