package finance

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers fund management routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/fund-management", func(r chi.Router) {
		r.Post("/analyze-finances", h.AnalyzeFinances)
		r.Post("/budget-recommendations", h.BudgetRecommendations)
		r.Post("/fundraising-strategy", h.FundraisingStrategy)
		r.Post("/financial-health-check", h.FinancialHealthCheck)
		r.Post("/expense-categorization", h.ExpenseCategorization)

		r.Get("/health", h.Health)
	})
}
