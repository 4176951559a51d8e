package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns canned results. Kinds listed in Fail return that
// error instead.
type MockConnector struct {
	logger *zap.Logger
	Fail   map[entity.SearchKind]error

	mu      sync.Mutex
	queries []string
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Configured() bool {
	return true
}

func (m *MockConnector) Search(ctx context.Context, kind entity.SearchKind, query, location string) (*entity.SearchResponse, error) {
	ctxzap.Info(ctx, "[MOCK] searching", zap.String("kind", string(kind)), zap.String("query", query))

	m.mu.Lock()
	m.queries = append(m.queries, string(kind)+":"+query)
	m.mu.Unlock()

	if err, ok := m.Fail[kind]; ok {
		return nil, fmt.Errorf("%w: %s search: %w", entity.ErrTransport, kind, err)
	}

	switch kind {
	case entity.SearchNews:
		return &entity.SearchResponse{News: []entity.NewsResult{
			{Title: "[MOCK] " + query + " sees record investment", Link: "https://news.example.com/1", Snippet: "Funding rose 20% year over year.", Source: "Example News"},
		}}, nil
	case entity.SearchImages:
		return &entity.SearchResponse{Images: []entity.ImageResult{
			{Title: "[MOCK] " + query + " chart", ImageURL: "https://images.example.com/chart.png", Link: "https://example.com/chart"},
		}}, nil
	default:
		return &entity.SearchResponse{Organic: []entity.OrganicResult{
			{Title: "[MOCK] " + query + " market size", Link: "https://example.com/market", Snippet: "The market is projected to grow 12% annually.", Position: 1},
			{Title: "[MOCK] Top companies in " + query, Link: "https://example.com/companies", Snippet: "Leaders include Acme and Globex.", Position: 2},
		}}, nil
	}
}

// Queries returns "kind:query" for every call so far.
func (m *MockConnector) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.queries))
	copy(out, m.queries)
	return out
}
