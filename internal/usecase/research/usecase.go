package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const DefaultLocation = "us"

const (
	templateMarket     = "market_analysis"
	templateCompetitor = "competitor_analysis"
	templateTrend      = "trend_analysis"
)

// ResearchUsecase combines web, news and image search with one model
// summarization call.
type ResearchUsecase struct {
	search   SearchClient
	pipeline ContentPipeline
	now      func() time.Time
	logger   *zap.Logger
}

func NewUsecase(search SearchClient, pipeline ContentPipeline, now func() time.Time, logger *zap.Logger) *ResearchUsecase {
	if now == nil {
		now = time.Now
	}
	return &ResearchUsecase{
		search:   search,
		pipeline: pipeline,
		now:      now,
		logger:   logger,
	}
}

// Comprehensive searches the query, optionally its news and charts, and
// summarizes everything into one analysis.
func (uc *ResearchUsecase) Comprehensive(ctx context.Context, req *entity.MarketResearchRequest) (*entity.MarketResearchResult, error) {
	query := strings.TrimSpace(req.MarketQuery)
	location := locationOr(req.Location)
	ctx = logger.AddFields(logger.WithAction(ctx, "MarketResearch"), zap.String("query", query))

	branches := []branch{{name: "search", kind: entity.SearchOrganic, query: query}}
	if req.IncludeNews == nil || *req.IncludeNews {
		branches = append(branches, branch{name: "news", kind: entity.SearchNews, query: query + " market trends news industry"})
	}
	if req.IncludeImages {
		branches = append(branches, branch{name: "images", kind: entity.SearchImages, query: query + " market analysis charts"})
	}

	return uc.run(ctx, templateMarket, query, query, location, branches)
}

// CompetitorAnalysis researches a company's competitive landscape.
func (uc *ResearchUsecase) CompetitorAnalysis(ctx context.Context, req *entity.CompetitorAnalysisRequest) (*entity.MarketResearchResult, error) {
	company := strings.TrimSpace(req.CompanyName)
	industry := strings.TrimSpace(req.Industry)
	ctx = logger.AddFields(logger.WithAction(ctx, "CompetitorAnalysis"), zap.String("company", company))

	queries := []string{
		fmt.Sprintf("%s competitors %s", company, industry),
		fmt.Sprintf("%s market leaders companies", industry),
		fmt.Sprintf("%s vs competitors comparison", company),
		fmt.Sprintf("%s competitive landscape analysis", industry),
	}
	branches := make([]branch, 0, len(queries))
	for i, q := range queries {
		branches = append(branches, branch{name: fmt.Sprintf("search_%d", i+1), kind: entity.SearchOrganic, query: q})
	}

	return uc.run(ctx, templateCompetitor,
		fmt.Sprintf("%s competitors in %s", company, industry),
		fmt.Sprintf("competitor analysis for %s in the %s industry", company, industry),
		locationOr(req.Location), branches)
}

// TrendAnalysis researches industry trends and forecasts.
func (uc *ResearchUsecase) TrendAnalysis(ctx context.Context, req *entity.TrendAnalysisRequest) (*entity.MarketResearchResult, error) {
	industry := strings.TrimSpace(req.Industry)
	period := strings.TrimSpace(req.TimePeriod)
	if period == "" {
		period = "recent"
	}
	ctx = logger.AddFields(logger.WithAction(ctx, "TrendAnalysis"), zap.String("industry", industry))

	queries := []string{
		fmt.Sprintf("%s trends %d predictions", industry, uc.now().Year()),
		fmt.Sprintf("%s market forecast future", industry),
		fmt.Sprintf("%s emerging technologies innovations", industry),
		fmt.Sprintf("%s consumer behavior changes", industry),
		fmt.Sprintf("%s regulatory changes impact", industry),
	}
	branches := make([]branch, 0, len(queries)+3)
	for i, q := range queries {
		branches = append(branches, branch{name: fmt.Sprintf("search_%d", i+1), kind: entity.SearchOrganic, query: q})
	}
	for i, q := range queries[:3] {
		branches = append(branches, branch{name: fmt.Sprintf("news_%d", i+1), kind: entity.SearchNews, query: q})
	}

	return uc.run(ctx, templateTrend,
		fmt.Sprintf("%s trends and predictions", industry),
		fmt.Sprintf("trend analysis for the %s industry (%s)", industry, period),
		locationOr(req.Location), branches)
}

func (uc *ResearchUsecase) run(ctx context.Context, templateName, query, focus, location string, branches []branch) (*entity.MarketResearchResult, error) {
	if !uc.search.Configured() {
		return nil, entity.ErrSearchNotConfigured
	}
	if !uc.pipeline.Configured() {
		return nil, entity.ErrAINotConfigured
	}
	t, err := uc.pipeline.Resolve(templateName)
	if err != nil {
		return nil, err
	}

	raw, meta := collect(uc.fanOut(ctx, location, branches))

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode search results: %w", err)
	}

	out, err := uc.pipeline.Run(ctx, t, &entity.ContentRequest{
		Kind: t.Kind,
		Record: &entity.ResearchPrompt{
			Focus: entity.FieldValue(focus),
			Data:  entity.FieldValue(data),
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Degraded {
		meta.Degraded = true
	}

	ctxzap.Info(ctx, "research completed",
		zap.Int("organic", meta.SearchResultsCount),
		zap.Int("news", meta.NewsResultsCount),
		zap.Int("images", meta.ImageResultsCount),
		zap.Strings("failed_branches", meta.FailedBranches),
		zap.Bool("degraded", meta.Degraded),
	)

	return &entity.MarketResearchResult{
		ID:        uuid.NewString(),
		Query:     query,
		Location:  location,
		Timestamp: uc.now(),
		RawData:   raw,
		Analysis:  toAnalysis(out),
		Metadata:  meta,
	}, nil
}

// Status reports whether both outbound services are configured.
func (uc *ResearchUsecase) Status() entity.HealthResponse {
	status := "healthy"
	if !uc.search.Configured() || !uc.pipeline.Configured() {
		status = "degraded"
	}
	return entity.HealthResponse{
		Status:       status,
		Service:      "market_research",
		AIConfigured: uc.pipeline.Configured(),
	}
}

func locationOr(location string) string {
	location = strings.ToLower(strings.TrimSpace(location))
	if location == "" {
		return DefaultLocation
	}
	return location
}

// QuickSearch runs one search without analysis.
func (uc *ResearchUsecase) QuickSearch(ctx context.Context, kind entity.SearchKind, query, location string) (*entity.SearchResponse, error) {
	switch kind {
	case entity.SearchOrganic, entity.SearchNews, entity.SearchImages:
	default:
		return nil, fmt.Errorf("%w: search_type %q (use search, news or images)", entity.ErrInvalidParameter, kind)
	}
	if !uc.search.Configured() {
		return nil, entity.ErrSearchNotConfigured
	}
	ctx = logger.WithAction(ctx, "QuickSearch")
	return uc.search.Search(ctx, kind, strings.TrimSpace(query), locationOr(location))
}
