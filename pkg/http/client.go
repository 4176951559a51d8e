package http

import (
	"net"
	"net/http"
	"time"
)

const (
	defaultMaxResponseBytes = 8 << 20
	defaultUserAgent        = "docgen-backend"
	maxIdleConns            = 64
	maxIdleConnsPerHost     = 8
)

// TransportFunc wraps a RoundTripper, e.g. to add auth or logging.
type TransportFunc func(http.RoundTripper) http.RoundTripper

// HttpOpts configures a Connector's client.
type HttpOpts func(*clientOptions)

type clientOptions struct {
	dialTimeout           time.Duration
	requestTimeout        time.Duration
	keepAlive             time.Duration
	tlsHandshakeTimeout   time.Duration
	responseHeaderTimeout time.Duration
	idleConnTimeout       time.Duration
	maxResponseBytes      int64
	userAgent             string
	transports            []TransportFunc
}

func defaultClientOptions() *clientOptions {
	return &clientOptions{
		dialTimeout:           10 * time.Second,
		requestTimeout:        30 * time.Second,
		keepAlive:             30 * time.Second,
		tlsHandshakeTimeout:   10 * time.Second,
		responseHeaderTimeout: 20 * time.Second,
		idleConnTimeout:       90 * time.Second,
		maxResponseBytes:      defaultMaxResponseBytes,
		userAgent:             defaultUserAgent,
	}
}

// WithConnClientTimeout bounds dialing.
func WithConnClientTimeout(timeout time.Duration) HttpOpts {
	return func(o *clientOptions) { o.dialTimeout = timeout }
}

// WithRequestTimeout bounds a whole request. Zero leaves it to the caller's context.
func WithRequestTimeout(timeout time.Duration) HttpOpts {
	return func(o *clientOptions) { o.requestTimeout = timeout }
}

func WithClientKeepAlive(keepAlive time.Duration) HttpOpts {
	return func(o *clientOptions) { o.keepAlive = keepAlive }
}

func WithResponseHeaderTimeout(timeout time.Duration) HttpOpts {
	return func(o *clientOptions) { o.responseHeaderTimeout = timeout }
}

func WithIdleConnTimeout(timeout time.Duration) HttpOpts {
	return func(o *clientOptions) { o.idleConnTimeout = timeout }
}

// WithMaxResponseBytes caps how much of a response body DoRequest reads.
func WithMaxResponseBytes(n int64) HttpOpts {
	return func(o *clientOptions) { o.maxResponseBytes = n }
}

func WithUserAgent(ua string) HttpOpts {
	return func(o *clientOptions) { o.userAgent = ua }
}

// WithTransport adds a wrapper around the base transport. Wrappers apply in
// order, so the last one added runs first.
func WithTransport(transport TransportFunc) HttpOpts {
	return func(o *clientOptions) { o.transports = append(o.transports, transport) }
}

func newClient(o *clientOptions) *http.Client {
	dialer := &net.Dialer{
		Timeout:   o.dialTimeout,
		KeepAlive: o.keepAlive,
	}

	var rt http.RoundTripper = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          maxIdleConns,
		MaxIdleConnsPerHost:   maxIdleConnsPerHost,
		TLSHandshakeTimeout:   o.tlsHandshakeTimeout,
		ResponseHeaderTimeout: o.responseHeaderTimeout,
		IdleConnTimeout:       o.idleConnTimeout,
	}
	for _, wrap := range o.transports {
		rt = wrap(rt)
	}

	return &http.Client{
		Timeout:   o.requestTimeout,
		Transport: rt,
	}
}
