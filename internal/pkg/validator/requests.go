package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/futig/docgen-backend/internal/entity"
)

const (
	minQuestionLength = 3
	minClauseLength   = 5
)

// ValidateAsk validates an assistant question.
func ValidateAsk(req *entity.AskRequest) error {
	if utf8.RuneCountInString(strings.TrimSpace(req.Question)) < minQuestionLength {
		return fmt.Errorf("%w: question must be at least %d characters", entity.ErrInvalidParameter, minQuestionLength)
	}
	return nil
}

// ValidateExplain validates a clause explanation request.
func ValidateExplain(req *entity.ExplainRequest) error {
	if utf8.RuneCountInString(strings.TrimSpace(req.Clause)) < minClauseLength {
		return fmt.Errorf("%w: clause must be at least %d characters", entity.ErrInvalidParameter, minClauseLength)
	}
	return nil
}

// ValidateMarketResearch validates a comprehensive research request.
func ValidateMarketResearch(req *entity.MarketResearchRequest) error {
	if strings.TrimSpace(req.MarketQuery) == "" {
		return fmt.Errorf("%w: market_query", entity.ErrMissingField)
	}
	return nil
}

// ValidateCompetitorAnalysis validates a competitor analysis request.
func ValidateCompetitorAnalysis(req *entity.CompetitorAnalysisRequest) error {
	if strings.TrimSpace(req.CompanyName) == "" {
		return fmt.Errorf("%w: company_name", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Industry) == "" {
		return fmt.Errorf("%w: industry", entity.ErrMissingField)
	}
	return nil
}

// ValidateTrendAnalysis validates a trend analysis request.
func ValidateTrendAnalysis(req *entity.TrendAnalysisRequest) error {
	if strings.TrimSpace(req.Industry) == "" {
		return fmt.Errorf("%w: industry", entity.ErrMissingField)
	}
	return nil
}

// ValidateFinancialAnalysis validates an analyze-finances request.
func ValidateFinancialAnalysis(req *entity.FinancialAnalysisRequest) error {
	switch req.QueryType {
	case entity.QueryExpenseAnalysis, entity.QueryBudgetPlanning, entity.QueryFundingStrategy, entity.QueryFinancialInsights:
	case "":
		return fmt.Errorf("%w: query_type", entity.ErrMissingField)
	default:
		return fmt.Errorf("%w: query_type %q", entity.ErrUnsupportedContentType, req.QueryType)
	}
	if len(req.Data) == 0 {
		return fmt.Errorf("%w: data", entity.ErrMissingField)
	}
	return nil
}

// ValidateBudgetRecommendation validates a budget recommendation request.
func ValidateBudgetRecommendation(req *entity.BudgetRecommendationRequest) error {
	if strings.TrimSpace(req.StartupStage) == "" {
		return fmt.Errorf("%w: startup_stage", entity.ErrMissingField)
	}
	if strings.TrimSpace(req.Industry) == "" {
		return fmt.Errorf("%w: industry", entity.ErrMissingField)
	}
	if req.TeamSize < 0 {
		return fmt.Errorf("%w: team_size must not be negative", entity.ErrInvalidParameter)
	}
	return nil
}

// ValidateFundraisingStrategy validates a fundraising strategy request.
func ValidateFundraisingStrategy(req *entity.FundraisingStrategyRequest) error {
	if strings.TrimSpace(req.CurrentStage) == "" {
		return fmt.Errorf("%w: current_stage", entity.ErrMissingField)
	}
	if req.TargetAmount <= 0 {
		return fmt.Errorf("%w: target_amount must be positive", entity.ErrInvalidParameter)
	}
	return nil
}

// ValidateExpenses validates an expense categorization request.
func ValidateExpenses(expenses []entity.MoneyEntry) error {
	if len(expenses) == 0 {
		return fmt.Errorf("%w: expenses", entity.ErrMissingField)
	}
	for i, e := range expenses {
		if e.Amount < 0 {
			return fmt.Errorf("%w: expense %d has a negative amount", entity.ErrInvalidParameter, i)
		}
	}
	return nil
}
