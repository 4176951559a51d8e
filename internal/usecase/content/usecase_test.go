package content

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/integration/llm"
	"github.com/futig/docgen-backend/internal/pkg/normalizer"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type unconfigured struct{ calls int }

func (u *unconfigured) Configured() bool { return false }

func (u *unconfigured) Generate(context.Context, *entity.PromptSpec) entity.GenerationResult {
	u.calls++
	return entity.NotConfiguredResult()
}

func newPipeline(reply string) (*Pipeline, *llm.MockConnector) {
	mock := llm.NewMockConnector(zap.NewNop())
	if reply != "" {
		mock.Respond = llm.Reply(reply)
	}
	return NewPipeline(prompt.DefaultRegistry(), mock), mock
}

func TestGenerateFencedJSONMatchesDirectParse(t *testing.T) {
	const body = `{"title": {"title": "NDA", "content": "Between Acme and Globex"}, "term": {"title": "Term", "content": "2 years"}}`

	p, _ := newPipeline("```json\n" + body + "\n```")
	_, fenced, err := p.Generate(context.Background(), "nda", json.RawMessage(`{"company_name": "Acme"}`), time.Time{})
	require.NoError(t, err)

	p, _ = newPipeline(body)
	_, direct, err := p.Generate(context.Background(), "nda", json.RawMessage(`{"company_name": "Acme"}`), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, direct.Content, fenced.Content)
	assert.False(t, fenced.Degraded)
	assert.Equal(t, normalizer.ParsedConfidence, fenced.Confidence)

	keys := []string{}
	for _, s := range fenced.Content.Sections() {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"title", "term"}, keys)
}

func TestGenerateGarbageUsesFallback(t *testing.T) {
	p, _ := newPipeline("I'm sorry, I cannot help with that.")

	tmpl, out, err := p.Generate(context.Background(), "NDA", json.RawMessage(`{"company_name": "Acme"}`), time.Time{})
	require.NoError(t, err)

	assert.True(t, out.Degraded)
	assert.Less(t, out.Confidence, normalizer.ParsedConfidence)
	assert.Equal(t, tmpl.FallbackContent(&entity.PartiesInfo{CompanyName: "Acme"}), out.Content)
}

func TestGenerateUnsupportedKindMakesNoCall(t *testing.T) {
	p, mock := newPipeline("")

	_, _, err := p.Generate(context.Background(), "haiku", nil, time.Time{})
	assert.ErrorIs(t, err, entity.ErrUnsupportedContentType)
	assert.Empty(t, mock.Specs())
}

func TestRunUnconfiguredShortCircuits(t *testing.T) {
	gen := &unconfigured{}
	p := NewPipeline(prompt.DefaultRegistry(), gen)
	assert.False(t, p.Configured())

	_, _, err := p.Generate(context.Background(), "pitch_deck", nil, time.Time{})
	assert.ErrorIs(t, err, entity.ErrAINotConfigured)
	assert.Zero(t, gen.calls)
}

func TestRunPropagatesTransportFailure(t *testing.T) {
	p, mock := newPipeline("")
	mock.Respond = llm.Fail(entity.FailureTimeout, context.DeadlineExceeded)

	_, _, err := p.Generate(context.Background(), "pitch_deck", nil, time.Time{})
	assert.ErrorIs(t, err, entity.ErrDeadlineExceeded)
	assert.ErrorIs(t, err, entity.ErrTransport)
}

func TestRunListShapeWrapsSingleObject(t *testing.T) {
	p, _ := newPipeline(`Here you go: {"vendor_name": "Acme", "total_amount": 10}`)
	tmpl, err := p.Resolve("invoice")
	require.NoError(t, err)

	out, err := p.Run(context.Background(), tmpl, &entity.ContentRequest{Kind: tmpl.Kind, Record: &entity.BillPrompt{Images: 1}})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.False(t, out.Degraded)
	assert.JSONEq(t, `{"vendor_name": "Acme", "total_amount": 10}`, string(out.Items[0]))
}

func TestRunTextShape(t *testing.T) {
	p, _ := newPipeline("```\nKeep 18 months of runway.\n```")
	tmpl, err := p.Resolve(entity.QueryExpenseAnalysis)
	require.NoError(t, err)

	out, err := p.Run(context.Background(), tmpl, &entity.ContentRequest{Kind: tmpl.Kind, Record: &entity.FinancialQuery{}})
	require.NoError(t, err)
	assert.Equal(t, "Keep 18 months of runway.", out.Text)
	assert.Nil(t, out.Content)
}

func TestRunPassesDateIntoPrompt(t *testing.T) {
	p, mock := newPipeline("")
	now := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	_, _, err := p.Generate(context.Background(), "privacy_policy", json.RawMessage(`{"company_name": "Acme"}`), now)
	require.NoError(t, err)

	specs := mock.Specs()
	require.Len(t, specs, 1)
	assert.Contains(t, specs[0].Instruction, "March 4, 2025")
	assert.Contains(t, specs[0].Instruction, "Acme")
}
