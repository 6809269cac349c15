package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client talks JSON to the productos API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a client rooted at baseURL (no trailing slash). A zero timeout
// means requests only end with their context.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchJSON sends data (when non-nil) as a JSON body and decodes a 2xx JSON
// response into out (when non-nil). Any failure comes back as *Error.
func (c *Client) FetchJSON(ctx context.Context, method, path string, data, out any) error {
	url := c.baseURL + path

	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return &Error{Kind: KindEncode, Method: method, URL: url, Err: err}
		}
		body = bytes.NewReader(payload)
	}

	c.logger.DebugContext(ctx, "Fetching",
		slog.String("url", url),
		slog.String("method", method),
		slog.Any("data", data))

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &Error{Kind: KindEncode, Method: method, URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, readErr := io.ReadAll(resp.Body)
		return &Error{
			Kind:   KindStatus,
			Method: method,
			URL:    url,
			Status: resp.StatusCode,
			Body:   string(text),
			Err:    readErr,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindDecode, Method: method, URL: url, Err: err}
	}
	return nil
}
