package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"product-catalog/internal/logger"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

var HttpClientTracer = otel.Tracer("HttpClient")

// HTTPClient is a thin wrapper carrying base URL, default headers, and trace
// propagation for outgoing requests.
type HTTPClient struct {
	client  *http.Client
	baseURL string
	headers map[string]string
}

// RequestOptions for request configuration
type RequestOptions struct {
	Method      string
	URL         string
	Headers     map[string]string
	QueryParams map[string]string
	Context     context.Context
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: make(map[string]string),
	}
}

// SetDefaultHeader adds a default header
func (c *HTTPClient) SetDefaultHeader(key, value string) {
	c.headers[key] = value
}

// Do performs the request and unmarshals the JSON body into result.
func (c *HTTPClient) Do(opts RequestOptions, result interface{}) error {
	fullURL, err := c.buildURL(opts.URL, opts.QueryParams)
	if err != nil {
		logger.Error(opts.Context, "Failed to build URL", slog.Any("error", err))
		return fmt.Errorf("failed to build URL: %w", err)
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := HttpClientTracer.Start(ctx, "catalog-http-request")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, opts.Method, fullURL, nil)
	if err != nil {
		logger.Error(ctx, "Failed to create request", slog.Any("error", err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Inject standard otel headers plus the trace ID for log correlation
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	traceID := span.SpanContext().TraceID().String()
	c.setHeaders(req, map[string]string{
		"X-Trace-ID": traceID,
	})
	c.setHeaders(req, opts.Headers)

	logger.Info(ctx, "HttpClient request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("trace_id", traceID),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error(ctx, "Failed to execute request", slog.String("error", err.Error()))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error(ctx, "Failed to read response body", slog.String("error", err.Error()))
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 500 {
		return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(rawBody)))
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if result != nil && len(rawBody) > 0 {
		if err := json.Unmarshal(rawBody, result); err != nil {
			logger.Error(ctx, "Failed to parse response", slog.Any("error", err))
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Get performs a GET request
func (c *HTTPClient) Get(url string, result interface{}, opts ...RequestOptions) error {
	reqOpts := RequestOptions{
		Method: "GET",
		URL:    url,
	}
	if len(opts) > 0 {
		reqOpts.Headers = opts[0].Headers
		reqOpts.QueryParams = opts[0].QueryParams
		reqOpts.Context = opts[0].Context
	}
	return c.Do(reqOpts, result)
}

// buildURL builds the complete URL with query parameters
func (c *HTTPClient) buildURL(path string, queryParams map[string]string) (string, error) {
	full := path
	if !strings.HasPrefix(path, "http") {
		full = c.baseURL + "/" + strings.TrimLeft(path, "/")
	}

	u, err := url.Parse(full)
	if err != nil {
		return "", err
	}

	if len(queryParams) > 0 {
		q := u.Query()
		for k, v := range queryParams {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

func (c *HTTPClient) setHeaders(req *http.Request, headers map[string]string) {
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
}
