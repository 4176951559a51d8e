package docs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"gopkg.in/yaml.v3"
)

const (
	yamlPath = "/docs/swagger.yaml"
	jsonPath = "/docs/swagger.json"
)

// Spec is the API description loaded once at startup.
type Spec struct {
	yaml []byte
	json []byte
}

// LoadSpec reads the YAML API description at path and prepares a JSON copy.
func LoadSpec(path string) (*Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read api spec: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse api spec: %w", err)
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode api spec: %w", err)
	}

	return &Spec{yaml: raw, json: asJSON}, nil
}

func (s *Spec) serveYAML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(s.yaml)
}

func (s *Spec) serveJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.json)
}

// RegisterRoutes mounts Swagger UI under /docs. A nil spec mounts nothing.
func RegisterRoutes(r chi.Router, spec *Spec) {
	if spec == nil {
		return
	}

	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusFound)
	})
	r.Get(yamlPath, spec.serveYAML)
	r.Get(jsonPath, spec.serveJSON)
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL(yamlPath),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))
}
