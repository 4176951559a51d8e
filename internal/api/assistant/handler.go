package assistant

import (
	"net/http"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/logger"
	"github.com/futig/docgen-backend/internal/pkg/response"
	"github.com/futig/docgen-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase AssistantUsecase
}

func NewHandler(usecase AssistantUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Ask handles POST /ask
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Ask")

	var req entity.AskRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validator.ValidateAsk(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	res, err := h.usecase.Ask(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "question answered", zap.Strings("sources", res.Sources), zap.Float64("confidence", res.Confidence))
	response.Success(w, res)
}

// Explain handles POST /explain
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Explain")

	var req entity.ExplainRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validator.ValidateExplain(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	res, err := h.usecase.Explain(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	response.Success(w, res)
}

// GenerateContent handles POST /generate-content
func (h *Handler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateContent")

	var req entity.ContentGenerationRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.ContentType == "" {
		response.Error(ctx, w, http.StatusBadRequest, "content_type is required", entity.ErrMissingField)
		return
	}

	res, err := h.usecase.GenerateContent(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	response.Success(w, res)
}

// Topics handles GET /knowledge/topics
func (h *Handler) Topics(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string][]string{"topics": h.usecase.Topics()})
}

// Health handles GET /assistant/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.usecase.Status())
}
