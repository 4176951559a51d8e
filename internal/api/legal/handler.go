package legal

import (
	"net/http"
	"strings"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/logger"
	"github.com/futig/docgen-backend/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase       LegalUsecase
	artifacts     ArtifactCleaner
	keepArtifacts bool
}

func NewHandler(usecase LegalUsecase, artifacts ArtifactCleaner, keepArtifacts bool) *Handler {
	return &Handler{
		usecase:       usecase,
		artifacts:     artifacts,
		keepArtifacts: keepArtifacts,
	}
}

// Create returns the handler for POST /legal/create-<kind>. The rendered
// file is streamed back and removed unless artifacts are kept.
func (h *Handler) Create(kind entity.ContentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.AddFields(logger.WithAction(r.Context(), "CreateLegalDocument"), zap.String("kind", string(kind)))

		var req entity.LegalDocumentRequest
		if err := response.DecodeJSON(r, &req); err != nil {
			response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
			return
		}

		res, err := h.usecase.Generate(ctx, string(kind), &req)
		if err != nil {
			response.UsecaseError(ctx, w, err)
			return
		}

		ctxzap.Info(ctx, "streaming legal document",
			zap.String("file", res.Artifact.Filename),
			zap.Float64("confidence", res.Confidence),
		)

		response.File(ctx, w, res.Artifact, response.GenerationHeaders{
			AIGenerated:    res.AIGenerated,
			GenerationDate: res.GenerationDatetime,
			Confidence:     res.Confidence,
		})
		if !h.keepArtifacts {
			h.artifacts.Remove(ctx, res.Artifact)
		}
	}
}

// Templates handles GET /legal/templates
func (h *Handler) Templates(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.usecase.Templates())
}

// PreviewContent handles POST /legal/preview-content. The kind comes from
// document_type in the body or the query string.
func (h *Handler) PreviewContent(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "PreviewLegalContent")

	var req entity.LegalDocumentRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	kind := strings.TrimSpace(req.DocumentType)
	if kind == "" {
		kind = strings.TrimSpace(r.URL.Query().Get("document_type"))
	}
	if kind == "" {
		response.Error(ctx, w, http.StatusBadRequest, "document_type is required", entity.ErrMissingField)
		return
	}

	res, err := h.usecase.Preview(ctx, kind, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "legal content previewed", zap.String("kind", res.DocumentType))
	response.Success(w, res)
}
