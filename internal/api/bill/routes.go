package bill

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers bill parser routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/bill-parser", func(r chi.Router) {
		r.Post("/parse-from-images", h.ParseFromImages)
		r.Post("/parse-from-files", h.ParseFromFiles)
		r.Post("/extract-text", h.ExtractText)
		r.Post("/validate-bill", h.ValidateBill)

		r.Get("/supported-formats", h.SupportedFormats)
		r.Get("/health", h.Health)
	})
}
