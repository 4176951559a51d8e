package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `openapi: 3.0.3
info:
  title: Docgen
  version: 1.0.0
paths: {}
`

func TestLoadSpecServesYAMLAndJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swagger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	spec, err := LoadSpec(path)
	require.NoError(t, err)

	r := chi.NewRouter()
	RegisterRoutes(r, spec)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/swagger.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sample, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/swagger.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestLoadSpecErrors(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("openapi: [unclosed"), 0o644))
	_, err = LoadSpec(bad)
	assert.Error(t, err)
}

func TestNilSpecMountsNothing(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/swagger.yaml", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
