package api

import (
	"net/http"
	"time"

	"github.com/futig/docgen-backend/internal/api/assistant"
	"github.com/futig/docgen-backend/internal/api/bill"
	"github.com/futig/docgen-backend/internal/api/docs"
	"github.com/futig/docgen-backend/internal/api/finance"
	"github.com/futig/docgen-backend/internal/api/legal"
	"github.com/futig/docgen-backend/internal/api/middleware"
	"github.com/futig/docgen-backend/internal/api/presentation"
	"github.com/futig/docgen-backend/internal/api/research"
	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const serviceName = "docgen-backend"

// Handlers groups the HTTP handlers mounted under /api/v1.
type Handlers struct {
	Legal        *legal.Handler
	Presentation *presentation.Handler
	Bill         *bill.Handler
	Research     *research.Handler
	Finance      *finance.Handler
	Assistant    *assistant.Handler
}

// RouterConfig holds router level settings.
type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
	AIConfigured   bool
	APISpec        *docs.Spec
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h Handlers, cfg RouterConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, entity.HealthResponse{
			Status:       "healthy",
			Service:      serviceName,
			AIConfigured: cfg.AIConfigured,
		})
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r, cfg.APISpec)

	r.Route("/api/v1", func(r chi.Router) {
		legal.RegisterRoutes(r, h.Legal)
		presentation.RegisterRoutes(r, h.Presentation)
		bill.RegisterRoutes(r, h.Bill)
		research.RegisterRoutes(r, h.Research)
		finance.RegisterRoutes(r, h.Finance)
		assistant.RegisterRoutes(r, h.Assistant)
	})

	return r
}
