package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/futig/docgen-backend/internal/pkg/response"
)

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Content-Type", "Authorization", "X-Request-Id"}
	corsExposed = []string{
		"Content-Disposition",
		response.HeaderAIGenerated,
		response.HeaderGenerationDate,
		response.HeaderContentConfidence,
	}
)

// CORS allows requests from the listed origins. A "*" entry allows any origin.
func CORS(allowedOrigins []string) func(next http.Handler) http.Handler {
	allowAny := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case allowAny:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(allowedOrigins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}

			w.Header().Set("Access-Control-Allow-Methods", strings.Join(corsMethods, ", "))
			w.Header().Set("Access-Control-Allow-Headers", strings.Join(corsHeaders, ", "))
			w.Header().Set("Access-Control-Expose-Headers", strings.Join(corsExposed, ", "))

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
