package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		origins    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{"wildcard", []string{"*"}, "https://a.test", http.MethodGet, "*", http.StatusTeapot},
		{"listed origin", []string{"https://a.test"}, "https://a.test", http.MethodPost, "https://a.test", http.StatusTeapot},
		{"unlisted origin", []string{"https://a.test"}, "https://b.test", http.MethodGet, "", http.StatusTeapot},
		{"preflight", []string{"https://a.test"}, "https://a.test", http.MethodOptions, "https://a.test", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			CORS(tt.origins)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Content-Confidence")
		})
	}
}

func TestLoggerInjectsRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(Logger(zap.New(core)))
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		ctxzap.Info(r.Context(), "inside handler")
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	inside := logs.FilterMessage("inside handler").All()
	if assert.Len(t, inside, 1) {
		assert.NotEmpty(t, inside[0].ContextMap()["request_id"])
	}
	finished := logs.FilterMessage("Finish handle HTTP request").All()
	if assert.Len(t, finished, 1) {
		assert.EqualValues(t, http.StatusNoContent, finished[0].ContextMap()["status"])
	}
}
