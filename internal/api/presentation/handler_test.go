package presentation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsecase struct {
	dir  string
	kind entity.ContentKind
	err  error
}

func (f *fakeUsecase) Generate(_ context.Context, kind entity.ContentKind, _ *entity.PresentationRequest) (*entity.PresentationResult, error) {
	f.kind = kind
	if f.err != nil {
		return nil, f.err
	}
	path := filepath.Join(f.dir, "pitch_deck_acme.pptx")
	if err := os.WriteFile(path, []byte("deck"), 0o644); err != nil {
		return nil, err
	}
	return &entity.PresentationResult{
		Artifact:    &entity.RenderedArtifact{Path: path, Filename: "pitch_deck_acme.pptx", MediaType: "application/vnd.openxmlformats-officedocument.presentationml.presentation", Size: 4},
		Kind:        kind,
		SlideCount:  10,
		AIGenerated: false,
		Confidence:  0.3,
		Degraded:    true,
		GeneratedAt: time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeUsecase) Outline(_ context.Context, kind entity.ContentKind, _ *entity.PresentationRequest) ([]entity.SlideSpec, error) {
	f.kind = kind
	return []entity.SlideSpec{{Key: "title", Title: "Acme"}}, f.err
}

func (f *fakeUsecase) Templates() []entity.PresentationTemplateInfo {
	return nil
}

type removeRecorder struct{ removed int }

func (r *removeRecorder) Remove(context.Context, *entity.RenderedArtifact) { r.removed++ }

func newRouter(uc PresentationUsecase, cleaner ArtifactCleaner) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc, cleaner, false))
	return r
}

func TestCreatePitchDeck(t *testing.T) {
	uc := &fakeUsecase{dir: t.TempDir()}
	cleaner := &removeRecorder{}

	rec := httptest.NewRecorder()
	newRouter(uc, cleaner).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/presentations/create-pitch-deck",
		strings.NewReader(`{"info": {"company_name": "Acme"}}`)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, entity.KindPitchDeck, uc.kind)
	assert.Equal(t, "deck", rec.Body.String())
	assert.Equal(t, "false", rec.Header().Get("X-AI-Generated"))
	assert.Equal(t, "0.30", rec.Header().Get("X-Content-Confidence"))
	assert.Equal(t, 1, cleaner.removed)
}

func TestCreateBusinessPlanNotConfigured(t *testing.T) {
	uc := &fakeUsecase{dir: t.TempDir(), err: entity.ErrAINotConfigured}
	cleaner := &removeRecorder{}

	rec := httptest.NewRecorder()
	newRouter(uc, cleaner).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/presentations/create-business-plan",
		strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, entity.KindBusinessPlan, uc.kind)
	assert.Zero(t, cleaner.removed)
}

func TestPreviewDefaultsToPitchDeck(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  entity.ContentKind
	}{
		{"default", "", entity.KindPitchDeck},
		{"business plan", "?document_type=business_plan", entity.KindBusinessPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUsecase{}
			rec := httptest.NewRecorder()
			newRouter(uc, &removeRecorder{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
				"/presentations/preview-content"+tt.query, strings.NewReader(`{}`)))
			require.Equal(t, http.StatusOK, rec.Code)

			var res entity.PresentationPreviewResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Equal(t, string(tt.want), res.DocumentType)
			assert.Equal(t, tt.want, uc.kind)
			assert.Len(t, res.Slides, 1)
		})
	}
}
