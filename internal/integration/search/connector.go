package search

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/futig/docgen-backend/internal/config"
	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/integration/common"
	pkghttp "github.com/futig/docgen-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const apiKeyHeader = "X-API-KEY"

// results per request for each endpoint
var resultCount = map[entity.SearchKind]int{
	entity.SearchOrganic: 20,
	entity.SearchNews:    15,
	entity.SearchImages:  10,
}

// Connector queries the Serper search API. Responses are cached for
// SEARCH_CACHE_TTL; retries cover network errors, 429 and 5xx.
type Connector struct {
	cfg       config.SearchConnectorConfig
	connector *pkghttp.Connector
	cache     *cache.Cache
	logger    *zap.Logger
}

func NewConnector(cfg config.SearchConnectorConfig, logger *zap.Logger) *Connector {
	if cfg.Token == "" {
		logger.Warn("SEARCH_API_KEY is empty, market research is disabled")
	}

	var c *cache.Cache
	if cfg.CacheTTL > 0 {
		c = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}

	return &Connector{
		cfg:       cfg,
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger, pkghttp.WithAPIKey(apiKeyHeader, cfg.Token)),
		cache:     c,
		logger:    logger,
	}
}

func (c *Connector) Configured() bool {
	return c.cfg.Token != ""
}

// Search runs one query against the endpoint for kind.
func (c *Connector) Search(ctx context.Context, kind entity.SearchKind, query, location string) (*entity.SearchResponse, error) {
	if !c.Configured() {
		return nil, entity.ErrSearchNotConfigured
	}

	num, ok := resultCount[kind]
	if !ok {
		return nil, fmt.Errorf("%w: search kind %q", entity.ErrInvalidParameter, kind)
	}

	req := &entity.SearchRequest{
		Query:    strings.TrimSpace(query),
		Location: location,
		Language: c.cfg.Language,
		Num:      num,
	}

	key := cacheKey(kind, req)
	if c.cache != nil {
		if cached, found := c.cache.Get(key); found {
			ctxzap.Debug(ctx, "search cache hit", zap.String("kind", string(kind)), zap.String("query", req.Query))
			return cached.(*entity.SearchResponse), nil
		}
	}

	ctxzap.Info(ctx, "searching via search service", zap.String("kind", string(kind)), zap.String("query", req.Query))

	var resp entity.SearchResponse
	err := c.cfg.Retry.Do(ctx, func(ctx context.Context) error {
		resp = entity.SearchResponse{}
		return c.connector.DoRequest(ctx, http.MethodPost, "/"+string(kind), req, &resp)
	}, pkghttp.IsRetryable)
	if err != nil {
		return nil, fmt.Errorf("%w: %s search: %w", entity.ErrTransport, kind, err)
	}

	ctxzap.Info(ctx, "search completed",
		zap.String("kind", string(kind)),
		zap.Int("organic", len(resp.Organic)),
		zap.Int("news", len(resp.News)),
		zap.Int("images", len(resp.Images)),
	)

	if c.cache != nil {
		c.cache.SetDefault(key, &resp)
	}
	return &resp, nil
}

func cacheKey(kind entity.SearchKind, req *entity.SearchRequest) string {
	return string(kind) + "|" + strings.ToLower(req.Location) + "|" + strings.ToLower(req.Query)
}
