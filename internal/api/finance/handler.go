package finance

import (
	"net/http"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/logger"
	"github.com/futig/docgen-backend/internal/pkg/response"
	"github.com/futig/docgen-backend/internal/pkg/validator"
)

type Handler struct {
	usecase FinanceUsecase
}

func NewHandler(usecase FinanceUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// AnalyzeFinances handles POST /fund-management/analyze-finances
func (h *Handler) AnalyzeFinances(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "AnalyzeFinances")

	var req entity.FinancialAnalysisRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validator.ValidateFinancialAnalysis(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	res, err := h.usecase.AnalyzeFinances(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	response.Success(w, res)
}

// BudgetRecommendations handles POST /fund-management/budget-recommendations
func (h *Handler) BudgetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "BudgetRecommendations")

	var req entity.BudgetRecommendationRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validator.ValidateBudgetRecommendation(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	res, err := h.usecase.BudgetRecommendations(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	response.Success(w, res)
}

// FundraisingStrategy handles POST /fund-management/fundraising-strategy
func (h *Handler) FundraisingStrategy(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "FundraisingStrategy")

	var req entity.FundraisingStrategyRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validator.ValidateFundraisingStrategy(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	res, err := h.usecase.FundraisingStrategy(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	response.Success(w, res)
}

// FinancialHealthCheck handles POST /fund-management/financial-health-check
func (h *Handler) FinancialHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "FinancialHealthCheck")

	var req entity.FinancialHealthRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	res, err := h.usecase.FinancialHealthCheck(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	response.Success(w, res)
}

// ExpenseCategorization handles POST /fund-management/expense-categorization.
// The body is a JSON array of expenses.
func (h *Handler) ExpenseCategorization(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExpenseCategorization")

	var expenses []entity.MoneyEntry
	if err := response.DecodeJSON(r, &expenses); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validator.ValidateExpenses(expenses); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	res, err := h.usecase.CategorizeExpenses(ctx, expenses)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	response.Success(w, res)
}

// Health handles GET /fund-management/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.usecase.Status())
}
