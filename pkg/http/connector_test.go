package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDoRequestSendsAPIKeyAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "coffee", body["q"])

		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()},
		WithAPIKey("X-API-KEY", "secret"),
		WithRequestLogging(),
	)

	var resp struct {
		OK bool `json:"ok"`
	}
	err := c.DoRequest(context.Background(), http.MethodPost, "/search", map[string]string{"q": "coffee"}, &resp)
	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestDoRequestReturnsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()})
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.True(t, IsRetryable(err))
}

func TestDoRequestCapsResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()}, WithMaxResponseBytes(16))
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 16 bytes")
	assert.False(t, IsRetryable(err))
}

func TestHTTPErrorTruncatesBody(t *testing.T) {
	err := newHTTPError(http.StatusBadGateway, []byte(strings.Repeat("a", maxErrorBody*2)))
	assert.Len(t, err.Message, maxErrorBody)
}

func TestEmptyAPIKeySendsNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Api-Key"]
		assert.False(t, present)
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL, Logger: zap.NewNop()}, WithAPIKey("X-API-KEY", ""))
	require.NoError(t, c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil))
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "network", err: &NetworkError{Err: errors.New("connection refused")}, want: true},
		{name: "canceled", err: &NetworkError{Err: context.Canceled}, want: false},
		{name: "server", err: &HTTPError{StatusCode: 502}, want: true},
		{name: "client", err: &HTTPError{StatusCode: 400}, want: false},
		{name: "other", err: errors.New("decode response"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestRedaction(t *testing.T) {
	h := http.Header{}
	h.Set("X-API-KEY", "secret")
	h.Set("Authorization", "Bearer token")
	h.Set("Accept", "application/json")

	out := redactHeaders(h)
	assert.Equal(t, redacted, out.Get("X-API-KEY"))
	assert.Equal(t, redacted, out.Get("Authorization"))
	assert.Equal(t, "application/json", out.Get("Accept"))
	assert.Equal(t, "secret", h.Get("X-API-KEY"))

	u, err := url.Parse("https://example.com/v1/models?key=abc&alt=json")
	require.NoError(t, err)
	got := redactURL(&http.Request{URL: u})
	assert.NotContains(t, got, "abc")
	assert.Contains(t, got, "alt=json")
}
