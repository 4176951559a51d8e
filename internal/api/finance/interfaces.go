package finance

import (
	"context"

	"github.com/futig/docgen-backend/internal/entity"
)

type FinanceUsecase interface {
	AnalyzeFinances(ctx context.Context, req *entity.FinancialAnalysisRequest) (*entity.AIResponse, error)
	BudgetRecommendations(ctx context.Context, req *entity.BudgetRecommendationRequest) (*entity.AIResponse, error)
	FundraisingStrategy(ctx context.Context, req *entity.FundraisingStrategyRequest) (*entity.AIResponse, error)
	FinancialHealthCheck(ctx context.Context, req *entity.FinancialHealthRequest) (*entity.AIResponse, error)
	CategorizeExpenses(ctx context.Context, expenses []entity.MoneyEntry) (*entity.ExpenseCategorizationResponse, error)
	Status() entity.HealthResponse
}
