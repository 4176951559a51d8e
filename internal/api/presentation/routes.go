package presentation

import (
	"github.com/futig/docgen-backend/internal/entity"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers presentation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/presentations", func(r chi.Router) {
		r.Post("/create-pitch-deck", h.Create(entity.KindPitchDeck))
		r.Post("/create-business-plan", h.Create(entity.KindBusinessPlan))

		r.Get("/templates", h.Templates)
		r.Post("/preview-content", h.PreviewContent)
	})
}
