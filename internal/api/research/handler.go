package research

import (
	"context"
	"net/http"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/logger"
	"github.com/futig/docgen-backend/internal/pkg/response"
	"github.com/futig/docgen-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase ResearchUsecase
}

func NewHandler(usecase ResearchUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Comprehensive handles POST /market-research/comprehensive
func (h *Handler) Comprehensive(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "MarketResearch")

	var req entity.MarketResearchRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validator.ValidateMarketResearch(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	res, err := h.usecase.Comprehensive(ctx, &req)
	h.respond(ctx, w, res, err, req.MarketQuery)
}

// CompetitorAnalysis handles POST /market-research/competitor-analysis
func (h *Handler) CompetitorAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CompetitorAnalysis")

	var req entity.CompetitorAnalysisRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validator.ValidateCompetitorAnalysis(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	res, err := h.usecase.CompetitorAnalysis(ctx, &req)
	h.respond(ctx, w, res, err, req.CompanyName)
}

// TrendAnalysis handles POST /market-research/trend-analysis
func (h *Handler) TrendAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "TrendAnalysis")

	var req entity.TrendAnalysisRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validator.ValidateTrendAnalysis(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	res, err := h.usecase.TrendAnalysis(ctx, &req)
	h.respond(ctx, w, res, err, req.Industry)
}

// QuickSearch handles GET /market-research/quick-search?query=&location=&search_type=
func (h *Handler) QuickSearch(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "QuickSearch")

	q := r.URL.Query()
	query := q.Get("query")
	if query == "" {
		response.Error(ctx, w, http.StatusBadRequest, "query is required", entity.ErrMissingField)
		return
	}
	kind := entity.SearchKind(q.Get("search_type"))
	if kind == "" {
		kind = entity.SearchOrganic
	}

	res, err := h.usecase.QuickSearch(ctx, kind, query, q.Get("location"))
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	response.Success(w, map[string]any{
		"success":     true,
		"data":        res,
		"query":       query,
		"search_type": kind,
		"location":    q.Get("location"),
	})
}

// Health handles GET /market-research/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.usecase.Status())
}

func (h *Handler) respond(ctx context.Context, w http.ResponseWriter, res *entity.MarketResearchResult, err error, query string) {
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "market research completed",
		zap.String("id", res.ID),
		zap.Strings("failed_branches", res.Metadata.FailedBranches),
	)
	response.Success(w, &entity.MarketResearchResponse{
		Success:  true,
		Data:     res,
		Query:    query,
		Location: res.Location,
	})
}
