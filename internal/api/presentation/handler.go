package presentation

import (
	"net/http"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/logger"
	"github.com/futig/docgen-backend/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase       PresentationUsecase
	artifacts     ArtifactCleaner
	keepArtifacts bool
}

func NewHandler(usecase PresentationUsecase, artifacts ArtifactCleaner, keepArtifacts bool) *Handler {
	return &Handler{
		usecase:       usecase,
		artifacts:     artifacts,
		keepArtifacts: keepArtifacts,
	}
}

// Create returns the handler for POST /presentations/create-<kind>.
func (h *Handler) Create(kind entity.ContentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.AddFields(logger.WithAction(r.Context(), "CreatePresentation"), zap.String("kind", string(kind)))

		var req entity.PresentationRequest
		if err := response.DecodeJSON(r, &req); err != nil {
			response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
			return
		}

		res, err := h.usecase.Generate(ctx, kind, &req)
		if err != nil {
			response.UsecaseError(ctx, w, err)
			return
		}

		ctxzap.Info(ctx, "streaming presentation",
			zap.String("file", res.Artifact.Filename),
			zap.Int("slides", res.SlideCount),
		)

		response.File(ctx, w, res.Artifact, response.GenerationHeaders{
			AIGenerated:    res.AIGenerated,
			GenerationDate: res.GeneratedAt.Format(entity.DatetimeLayout),
			Confidence:     res.Confidence,
		})
		if !h.keepArtifacts {
			h.artifacts.Remove(ctx, res.Artifact)
		}
	}
}

// Templates handles GET /presentations/templates
func (h *Handler) Templates(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.usecase.Templates())
}

// PreviewContent handles POST /presentations/preview-content?document_type=<kind>.
// The kind defaults to pitch_deck.
func (h *Handler) PreviewContent(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "PreviewPresentation")

	kind := entity.ContentKind(r.URL.Query().Get("document_type")).Normalize()
	if kind == "" {
		kind = entity.KindPitchDeck
	}

	var req entity.PresentationRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	slides, err := h.usecase.Outline(ctx, kind, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.PresentationPreviewResponse{
		DocumentType: string(kind),
		Slides:       slides,
		Status:       "success",
	})
}
