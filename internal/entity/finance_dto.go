package entity

import "encoding/json"

type FinancialAnalysisRequest struct {
	QueryType     string          `json:"query_type"`
	Data          json.RawMessage `json:"data"`
	Context       string          `json:"context,omitempty"`
	AnalysisLevel string          `json:"analysis_level,omitempty"`
}

type BudgetRecommendationRequest struct {
	StartupStage   string   `json:"startup_stage"`
	MonthlyRevenue *float64 `json:"monthly_revenue,omitempty"`
	TeamSize       int      `json:"team_size"`
	Industry       string   `json:"industry"`
	FundingRaised  *float64 `json:"funding_raised,omitempty"`
	BurnRate       *float64 `json:"burn_rate,omitempty"`
}

type FundraisingStrategyRequest struct {
	CurrentStage    string          `json:"current_stage"`
	TargetAmount    float64         `json:"target_amount"`
	Industry        string          `json:"industry"`
	TractionMetrics json.RawMessage `json:"traction_metrics"`
	TeamBackground  string          `json:"team_background"`
	MarketSize      string          `json:"market_size,omitempty"`
}

// MoneyEntry is one expense, revenue or funding line.
type MoneyEntry struct {
	Category    string  `json:"category,omitempty"`
	Source      string  `json:"source,omitempty"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
}

type FinancialHealthRequest struct {
	MonthlyExpenses []MoneyEntry `json:"monthly_expenses"`
	RevenueData     []MoneyEntry `json:"revenue_data"`
	FundingSources  []MoneyEntry `json:"funding_sources"`
	BurnRate        float64      `json:"burn_rate"`
	RunwayMonths    float64      `json:"runway_months"`
}

// AIResponse is the common envelope of fund management answers.
type AIResponse struct {
	Analysis        string   `json:"analysis"`
	Recommendations []string `json:"recommendations"`
	Insights        []string `json:"insights"`
	ActionItems     []string `json:"action_items"`
	Confidence      float64  `json:"confidence"`
	Sources         []string `json:"sources"`
}

type CategoryDeviation struct {
	ActualRatio  float64 `json:"actual_ratio"`
	OptimalRatio float64 `json:"optimal_ratio"`
	Deviation    float64 `json:"deviation"`
}

type OptimizationScore struct {
	Score         float64                      `json:"score"`
	Deviations    map[string]CategoryDeviation `json:"deviations"`
	TotalExpenses float64                      `json:"total_expenses"`
}

type ExpenseCategorizationResponse struct {
	Analysis          string             `json:"analysis"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
	OptimizationScore OptimizationScore  `json:"optimization_score"`
	Recommendations   []string           `json:"recommendations"`
}

// Insights holds marker-based extractions from free-text analysis.
type Insights struct {
	Recommendations []string
	Insights        []string
	ActionItems     []string
}
