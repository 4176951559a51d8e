package research

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/integration/llm"
	"github.com/futig/docgen-backend/internal/integration/search"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
	"github.com/futig/docgen-backend/internal/usecase/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const analysisReply = "```json\n" + `{
  "market_overview": "The market grows steadily.",
  "key_insights": ["Demand is rising"],
  "competitors": [{"name": "Acme", "description": "Market leader"}, "Globex"],
  "trends": ["Automation"]
}` + "\n```"

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newUsecase(reply string) (*ResearchUsecase, *search.MockConnector, *llm.MockConnector) {
	searcher := search.NewMockConnector(zap.NewNop())
	gen := llm.NewMockConnector(zap.NewNop())
	gen.Respond = llm.Reply(reply)
	pipeline := content.NewPipeline(prompt.DefaultRegistry(), gen)
	uc := NewUsecase(searcher, pipeline, func() time.Time { return fixedNow }, zap.NewNop())
	return uc, searcher, gen
}

func TestComprehensiveToleratesFailedNewsBranch(t *testing.T) {
	uc, searcher, gen := newUsecase(analysisReply)
	searcher.Fail = map[entity.SearchKind]error{entity.SearchNews: errors.New("status 500")}

	res, err := uc.Comprehensive(context.Background(), &entity.MarketResearchRequest{MarketQuery: "electric bikes"})
	require.NoError(t, err)

	assert.Equal(t, []string{"news"}, res.Metadata.FailedBranches)
	assert.True(t, res.Metadata.Degraded)
	assert.Equal(t, 2, res.Metadata.SearchResultsCount)
	assert.Equal(t, 0, res.Metadata.NewsResultsCount)
	require.Len(t, res.RawData.NewsResults, 1)
	assert.Empty(t, res.RawData.NewsResults[0].News)

	assert.Equal(t, "The market grows steadily.", res.Analysis.MarketOverview)
	assert.Equal(t, []string{"Acme: Market leader", "Globex"}, res.Analysis.Competitors)
	assert.Equal(t, prompt.DataNotAvailable, res.Analysis.MarketSize)
	assert.Equal(t, []string{}, res.Analysis.Challenges)

	specs := gen.Specs()
	require.Len(t, specs, 1)
	assert.Contains(t, specs[0].Instruction, "electric bikes market size")
}

func TestComprehensiveBranchSelection(t *testing.T) {
	uc, searcher, _ := newUsecase(analysisReply)
	noNews := false

	_, err := uc.Comprehensive(context.Background(), &entity.MarketResearchRequest{
		MarketQuery:   "solar",
		IncludeNews:   &noNews,
		IncludeImages: true,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"search:solar", "images:solar market analysis charts"}, searcher.Queries())
}

func TestComprehensiveUnparsableSummary(t *testing.T) {
	long := strings.Repeat("a", 600)
	uc, _, _ := newUsecase(long)

	res, err := uc.Comprehensive(context.Background(), &entity.MarketResearchRequest{MarketQuery: "solar"})
	require.NoError(t, err)

	assert.True(t, res.Metadata.Degraded)
	assert.Len(t, res.Analysis.MarketOverview, overviewLimit)
	assert.Equal(t, []string{strings.Repeat("a", 100)}, res.Analysis.KeyInsights)
	assert.Equal(t, long, res.Analysis.RawAnalysis)
}

func TestCompetitorAndTrendQueries(t *testing.T) {
	uc, searcher, _ := newUsecase(analysisReply)

	res, err := uc.CompetitorAnalysis(context.Background(), &entity.CompetitorAnalysisRequest{CompanyName: "Acme", Industry: "fintech"})
	require.NoError(t, err)
	assert.Equal(t, "Acme competitors in fintech", res.Query)
	assert.Equal(t, DefaultLocation, res.Location)
	assert.Len(t, searcher.Queries(), 4)
	assert.Equal(t, 8, res.Metadata.SearchResultsCount)

	uc, searcher, _ = newUsecase(analysisReply)
	res, err = uc.TrendAnalysis(context.Background(), &entity.TrendAnalysisRequest{Industry: "fintech"})
	require.NoError(t, err)
	assert.Contains(t, searcher.Queries(), "search:fintech trends 2025 predictions")
	assert.Len(t, searcher.Queries(), 8)
	assert.Equal(t, 3, res.Metadata.NewsResultsCount)
}

type offline struct{}

func (offline) Search(context.Context, entity.SearchKind, string, string) (*entity.SearchResponse, error) {
	return nil, entity.ErrSearchNotConfigured
}

func (offline) Configured() bool { return false }

func TestSearchNotConfigured(t *testing.T) {
	gen := llm.NewMockConnector(zap.NewNop())
	uc := NewUsecase(offline{}, content.NewPipeline(prompt.DefaultRegistry(), gen), nil, zap.NewNop())

	_, err := uc.Comprehensive(context.Background(), &entity.MarketResearchRequest{MarketQuery: "solar"})
	assert.ErrorIs(t, err, entity.ErrSearchNotConfigured)
	assert.Empty(t, gen.Specs())
	assert.Equal(t, "degraded", uc.Status().Status)
}

func TestQuickSearch(t *testing.T) {
	uc, searcher, gen := newUsecase(analysisReply)

	res, err := uc.QuickSearch(context.Background(), entity.SearchNews, " drones ", "")
	require.NoError(t, err)
	assert.Len(t, res.News, 1)
	assert.Equal(t, []string{"news:drones"}, searcher.Queries())
	assert.Empty(t, gen.Specs())

	_, err = uc.QuickSearch(context.Background(), "videos", "drones", "")
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}
