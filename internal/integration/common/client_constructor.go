package common

import (
	"time"

	"github.com/futig/docgen-backend/internal/config"
	pkgHTTP "github.com/futig/docgen-backend/pkg/http"
	"go.uber.org/zap"
)

const (
	defaultConnTimeout     = 10 * time.Second
	defaultKeepAlive       = 30 * time.Second
	defaultIdleConnTimeout = 90 * time.Second
)

// NewBaseConnector builds a logged connector with the configured timeouts.
// Authentication is passed by the caller since every service names its
// credential header differently.
func NewBaseConnector(cfg config.HTTPClientConfig, logger *zap.Logger, auth ...pkgHTTP.HttpOpts) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	opts := []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(),
	}
	opts = append(opts, auth...)

	return pkgHTTP.NewConnector(connCfg, opts...)
}

// LLMHTTPConfig derives client timeouts for generation SDKs. The overall
// deadline is enforced per call with a context, so the client itself has none.
func LLMHTTPConfig(cfg config.LLMConfig) config.HTTPClientConfig {
	return config.HTTPClientConfig{
		RequestTimeout:        0,
		ConnTimeout:           defaultConnTimeout,
		KeepAlive:             defaultKeepAlive,
		IdleConnTimeout:       defaultIdleConnTimeout,
		ResponseHeaderTimeout: cfg.Timeout,
		Url:                   cfg.BaseURL,
	}
}
