package research

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers market research routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/market-research", func(r chi.Router) {
		r.Post("/comprehensive", h.Comprehensive)
		r.Post("/competitor-analysis", h.CompetitorAnalysis)
		r.Post("/trend-analysis", h.TrendAnalysis)

		r.Get("/quick-search", h.QuickSearch)
		r.Get("/health", h.Health)
	})
}
