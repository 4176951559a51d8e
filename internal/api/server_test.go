package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/futig/docgen-backend/internal/api/assistant"
	"github.com/futig/docgen-backend/internal/api/bill"
	"github.com/futig/docgen-backend/internal/api/finance"
	"github.com/futig/docgen-backend/internal/api/legal"
	"github.com/futig/docgen-backend/internal/api/presentation"
	"github.com/futig/docgen-backend/internal/api/research"
	"github.com/futig/docgen-backend/internal/config"
	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/integration/llm"
	"github.com/futig/docgen-backend/internal/integration/search"
	"github.com/futig/docgen-backend/internal/pkg/artifact"
	"github.com/futig/docgen-backend/internal/pkg/formatter"
	"github.com/futig/docgen-backend/internal/pkg/knowledge"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
	"github.com/futig/docgen-backend/internal/pkg/validator"
	assistantuc "github.com/futig/docgen-backend/internal/usecase/assistant"
	billuc "github.com/futig/docgen-backend/internal/usecase/bill"
	"github.com/futig/docgen-backend/internal/usecase/content"
	financeuc "github.com/futig/docgen-backend/internal/usecase/finance"
	legaluc "github.com/futig/docgen-backend/internal/usecase/legal"
	presentationuc "github.com/futig/docgen-backend/internal/usecase/presentation"
	researchuc "github.com/futig/docgen-backend/internal/usecase/research"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop()

	uploads, err := config.NewFileUploadConfig("1MB", "2MB", 2)
	require.NoError(t, err)

	gen := llm.NewMockConnector(logger)
	pipeline := content.NewPipeline(prompt.DefaultRegistry(), gen)
	store := artifact.NewStore(t.TempDir(), formatter.NewFactory(formatter.WithTempDir(t.TempDir())))
	files := validator.NewFileValidator(uploads)
	kb := knowledge.NewSnapshot(knowledge.Builtin()...)

	h := Handlers{
		Legal:        legal.NewHandler(legaluc.NewUsecase(pipeline, store, time.Now, logger), store, false),
		Presentation: presentation.NewHandler(presentationuc.NewUsecase(pipeline, store, time.Now, logger), store, false),
		Bill:         bill.NewHandler(billuc.NewUsecase(pipeline, files, logger), uploads, files),
		Research:     research.NewHandler(researchuc.NewUsecase(search.NewMockConnector(logger), pipeline, time.Now, logger)),
		Finance:      finance.NewHandler(financeuc.NewUsecase(pipeline, logger)),
		Assistant:    assistant.NewHandler(assistantuc.NewUsecase(pipeline, kb, time.Now, logger)),
	}

	return SetupRouter(h, RouterConfig{
		AllowedOrigins: []string{"https://app.test"},
		RequestTimeout: time.Minute,
		AIConfigured:   pipeline.Configured(),
	}, logger)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res entity.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "healthy", res.Status)
	assert.True(t, res.AIConfigured)
}

func TestRoutesMountedUnderAPIPrefix(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/legal/templates",
		"/api/v1/presentations/templates",
		"/api/v1/bill-parser/supported-formats",
		"/api/v1/market-research/health",
		"/api/v1/fund-management/health",
		"/api/v1/knowledge/topics",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/legal/templates", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ask", strings.NewReader(""))
	req.Header.Set("Origin", "https://app.test")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.test", rec.Header().Get("Access-Control-Allow-Origin"))
}
