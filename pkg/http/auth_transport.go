package http

import "net/http"

// headerTransport sets one credential header on every request.
type headerTransport struct {
	header    string
	value     string
	transport http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.value == "" {
		return t.transport.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set(t.header, t.value)
	return t.transport.RoundTrip(clone)
}

// WithAPIKey sends the key in a service-specific header such as X-API-KEY.
// An empty key sends nothing.
func WithAPIKey(header, key string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &headerTransport{
			header:    header,
			value:     key,
			transport: rt,
		}
	})
}
