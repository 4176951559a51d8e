package assistant

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers assistant routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/ask", h.Ask)
	r.Post("/explain", h.Explain)
	r.Post("/generate-content", h.GenerateContent)

	r.Get("/knowledge/topics", h.Topics)
	r.Get("/assistant/health", h.Health)
}
