package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Connector sends JSON requests to one base URL.
type Connector struct {
	baseURL          string
	httpClient       *http.Client
	userAgent        string
	maxResponseBytes int64
	logger           *zap.Logger
}

type ConnectorConfig struct {
	BaseURL string
	Logger  *zap.Logger
}

func NewConnector(config *ConnectorConfig, options ...HttpOpts) *Connector {
	o := defaultClientOptions()
	for _, opt := range options {
		opt(o)
	}

	return &Connector{
		baseURL:          config.BaseURL,
		httpClient:       newClient(o),
		userAgent:        o.userAgent,
		maxResponseBytes: o.maxResponseBytes,
		logger:           config.Logger,
	}
}

// Client exposes the configured client for SDKs that take an *http.Client.
func (c *Connector) Client() *http.Client {
	return c.httpClient
}

// DoRequest sends reqBody as JSON to baseURL+endpoint and decodes a 2xx
// response into respBody. Both bodies may be nil.
func (c *Connector) DoRequest(ctx context.Context, method, endpoint string, reqBody, respBody any) error {
	req, err := c.newRequest(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseBytes+1))
	if err != nil {
		return &NetworkError{Err: fmt.Errorf("read response body: %w", err)}
	}
	if int64(len(body)) > c.maxResponseBytes {
		return fmt.Errorf("response body exceeds %d bytes", c.maxResponseBytes)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newHTTPError(resp.StatusCode, body)
	}

	if respBody == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, respBody); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Connector) newRequest(ctx context.Context, method, url string, reqBody any) (*http.Request, error) {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
		ctx = context.WithValue(ctx, payloadContextKey{}, len(data))
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}
