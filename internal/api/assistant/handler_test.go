package assistant

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/integration/llm"
	"github.com/futig/docgen-backend/internal/pkg/knowledge"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
	assistantuc "github.com/futig/docgen-backend/internal/usecase/assistant"
	"github.com/futig/docgen-backend/internal/usecase/content"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(reply string) (http.Handler, *llm.MockConnector) {
	gen := llm.NewMockConnector(zap.NewNop())
	gen.Respond = llm.Reply(reply)
	kb := knowledge.NewSnapshot(knowledge.Builtin()...)
	uc := assistantuc.NewUsecase(content.NewPipeline(prompt.DefaultRegistry(), gen), kb, time.Now, zap.NewNop())

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	return r, gen
}

func TestAsk(t *testing.T) {
	router, _ := newRouter("Vesting spreads founder equity over four years.")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ask",
		strings.NewReader(`{"question": "Explain vesting schedules"}`)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res entity.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Vesting spreads founder equity over four years.", res.Answer)
	assert.Equal(t, []string{knowledge.TopicLegalClauses}, res.Sources)
	assert.Equal(t, assistantuc.Confidence(res.Answer), res.Confidence)
}

func TestAssistantValidation(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"short question", "/ask", `{"question": "hi"}`},
		{"short clause", "/explain", `{"clause": "ok"}`},
		{"missing content type", "/generate-content", `{"user_info": {}}`},
		{"text kind", "/generate-content", `{"content_type": "assistant_ask"}`},
		{"malformed", "/ask", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, gen := newRouter("unused")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, gen.Specs())
		})
	}
}

func TestGenerateContentDegraded(t *testing.T) {
	router, _ := newRouter("no json here")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-content",
		strings.NewReader(`{"content_type": "nda", "user_info": {"company_name": "Acme"}}`)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res entity.ContentGenerationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Degraded)
	assert.Equal(t, "nda", res.ContentType)
	assert.NotNil(t, res.ContentStructure)
}

func TestTopics(t *testing.T) {
	router, _ := newRouter("")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/knowledge/topics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res["topics"], knowledge.TopicLegalClauses)
}
