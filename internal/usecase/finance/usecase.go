package finance

import (
	"context"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/insight"
	"github.com/futig/docgen-backend/internal/pkg/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Fixed confidence per analysis. Text answers carry no parse signal, so
// these are constants rather than derived values.
const (
	AnalysisConfidence    = 0.85
	BudgetConfidence      = 0.88
	FundraisingConfidence = 0.87
	HealthConfidence      = 0.90
)

const (
	templateBudget      = "budget_recommendations"
	templateFundraising = "fundraising_strategy"
	templateHealth      = "financial_health_check"
	templateExpenses    = "expense_categorization"
)

// FinanceUsecase answers fund management questions with free-text analysis
// plus marker-based recommendations, insights and action items.
type FinanceUsecase struct {
	pipeline ContentPipeline
	logger   *zap.Logger
}

func NewUsecase(pipeline ContentPipeline, logger *zap.Logger) *FinanceUsecase {
	return &FinanceUsecase{
		pipeline: pipeline,
		logger:   logger,
	}
}

// AnalyzeFinances runs the prompt selected by the query type.
func (uc *FinanceUsecase) AnalyzeFinances(ctx context.Context, req *entity.FinancialAnalysisRequest) (*entity.AIResponse, error) {
	ctx = logger.AddFields(logger.WithAction(ctx, "AnalyzeFinances"), zap.String("query_type", req.QueryType))

	rec := &entity.FinancialQuery{
		QueryType: req.QueryType,
		Data:      req.Data,
		Context:   entity.FieldValue(req.Context),
	}
	return uc.advise(ctx, req.QueryType, rec, AnalysisConfidence,
		"startup_financial_knowledge", "industry_best_practices")
}

func (uc *FinanceUsecase) BudgetRecommendations(ctx context.Context, req *entity.BudgetRecommendationRequest) (*entity.AIResponse, error) {
	ctx = logger.AddFields(logger.WithAction(ctx, "BudgetRecommendations"), zap.String("stage", req.StartupStage))
	return uc.advise(ctx, templateBudget, req, BudgetConfidence,
		"startup_budgeting_best_practices", "industry_benchmarks")
}

func (uc *FinanceUsecase) FundraisingStrategy(ctx context.Context, req *entity.FundraisingStrategyRequest) (*entity.AIResponse, error) {
	ctx = logger.AddFields(logger.WithAction(ctx, "FundraisingStrategy"), zap.String("stage", req.CurrentStage))
	return uc.advise(ctx, templateFundraising, req, FundraisingConfidence,
		"fundraising_best_practices", "investor_relations_knowledge")
}

// FinancialHealthCheck assesses cash flow; totals are computed locally and
// passed to the model.
func (uc *FinanceUsecase) FinancialHealthCheck(ctx context.Context, req *entity.FinancialHealthRequest) (*entity.AIResponse, error) {
	ctx = logger.WithAction(ctx, "FinancialHealthCheck")
	expenses, revenue, cashFlow := req.Totals()
	ctx = logger.AddFields(ctx,
		zap.Float64("expenses", expenses),
		zap.Float64("revenue", revenue),
		zap.Float64("cash_flow", cashFlow),
	)
	return uc.advise(ctx, templateHealth, req, HealthConfidence,
		"financial_health_indicators", "startup_financial_management")
}

// CategorizeExpenses groups expenses by category, scores the split against
// OptimalRatios and asks for optimization advice.
func (uc *FinanceUsecase) CategorizeExpenses(ctx context.Context, expenses []entity.MoneyEntry) (*entity.ExpenseCategorizationResponse, error) {
	ctx = logger.AddFields(logger.WithAction(ctx, "CategorizeExpenses"), zap.Int("expenses", len(expenses)))

	breakdown := entity.NewExpenseBreakdown(expenses)
	text, err := uc.generate(ctx, templateExpenses, breakdown)
	if err != nil {
		return nil, err
	}

	return &entity.ExpenseCategorizationResponse{
		Analysis:          text,
		CategoryBreakdown: breakdown.Totals,
		OptimizationScore: Score(breakdown),
		Recommendations:   insight.Recommendations(text),
	}, nil
}

func (uc *FinanceUsecase) advise(ctx context.Context, templateName string, rec entity.Record, confidence float64, sources ...string) (*entity.AIResponse, error) {
	text, err := uc.generate(ctx, templateName, rec)
	if err != nil {
		return nil, err
	}

	found := insight.Extract(text)
	ctxzap.Info(ctx, "financial analysis generated",
		zap.Int("recommendations", len(found.Recommendations)),
		zap.Int("insights", len(found.Insights)),
		zap.Int("action_items", len(found.ActionItems)),
	)

	return &entity.AIResponse{
		Analysis:        text,
		Recommendations: found.Recommendations,
		Insights:        found.Insights,
		ActionItems:     found.ActionItems,
		Confidence:      confidence,
		Sources:         sources,
	}, nil
}

func (uc *FinanceUsecase) generate(ctx context.Context, templateName string, rec entity.Record) (string, error) {
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

// Status reports whether analyses can call the model.
func (uc *FinanceUsecase) Status() entity.HealthResponse {
	return entity.HealthResponse{
		Status:       "healthy",
		Service:      "fund_management",
		AIConfigured: uc.pipeline.Configured(),
	}
}
