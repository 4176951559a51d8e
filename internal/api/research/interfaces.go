package research

import (
	"context"

	"github.com/futig/docgen-backend/internal/entity"
)

type ResearchUsecase interface {
	Comprehensive(ctx context.Context, req *entity.MarketResearchRequest) (*entity.MarketResearchResult, error)
	CompetitorAnalysis(ctx context.Context, req *entity.CompetitorAnalysisRequest) (*entity.MarketResearchResult, error)
	TrendAnalysis(ctx context.Context, req *entity.TrendAnalysisRequest) (*entity.MarketResearchResult, error)
	QuickSearch(ctx context.Context, kind entity.SearchKind, query, location string) (*entity.SearchResponse, error)
	Status() entity.HealthResponse
}
