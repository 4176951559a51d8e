package legal

import (
	"github.com/futig/docgen-backend/internal/entity"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers legal document routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/legal", func(r chi.Router) {
		r.Post("/create-nda", h.Create(entity.KindNDA))
		r.Post("/create-cda", h.Create(entity.KindCDA))
		r.Post("/create-employment-agreement", h.Create(entity.KindEmploymentAgreement))
		r.Post("/create-founder-agreement", h.Create(entity.KindFounderAgreement))
		r.Post("/create-terms-of-service", h.Create(entity.KindTermsOfService))
		r.Post("/create-privacy-policy", h.Create(entity.KindPrivacyPolicy))

		r.Get("/templates", h.Templates)
		r.Post("/preview-content", h.PreviewContent)
	})
}
