// Package backend is the console's only path to the arena REST API.
//
// Every call is a single attempt bound to the caller's context: there is no
// retry and no caching. Non-2xx answers become *APIError and transport
// failures wrap ErrUnavailable.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/louisbranch/arenacontrol/internal/services/console/backend"
	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 4 << 20
	// maxMessageLength caps raw-body error messages.
	maxMessageLength = 300
)

// ErrUnavailable marks failures to reach the backend at all.
var ErrUnavailable = errors.New("backend unavailable")

// APIError is a non-success answer from the backend.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: backend returned %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// StatusCode returns the backend status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Client issues JSON requests against the backend base URL.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout bounds each request. Zero leaves requests bounded only by the
// caller's context.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		if provider != nil {
			c.tracer = provider.Tracer(tracerName)
		}
	}
}

// WithPropagator overrides the global text map propagator.
func WithPropagator(propagator propagation.TextMapPropagator) Option {
	return func(c *Client) {
		if propagator != nil {
			c.propagator = propagator
		}
	}
}

// NewClient builds a client for baseURL, which must be absolute.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", baseURL)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/")

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{},
		tracer:     otel.Tracer(tracerName),
		propagator: otel.GetTextMapPropagator(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Get decodes the response of GET path into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body as JSON and decodes the response into out, if non-nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put sends body as JSON and decodes the response into out, if non-nil.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues DELETE path and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (err error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctx, span := c.tracer.Start(ctx, "backend "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
			attribute.String("server.address", c.baseURL.Host),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, marshalErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read %s %s: %w", ErrUnavailable, method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw, resp.StatusCode),
		}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// errorMessage picks the most specific message a backend error body offers.
func errorMessage(raw []byte, status int) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return http.StatusText(status)
	}

	var payload map[string]json.RawMessage
	if json.Unmarshal(trimmed, &payload) == nil {
		for _, key := range []string{"detail", "error", "message"} {
			if msg := messageField(payload[key]); msg != "" {
				return msg
			}
		}
	}

	text := string(trimmed)
	if len(text) > maxMessageLength {
		text = text[:maxMessageLength]
	}
	return text
}

// messageField reads a string field, or the first "msg" of a list of
// validation problems.
func messageField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var text string
	if json.Unmarshal(raw, &text) == nil {
		return strings.TrimSpace(text)
	}
	var problems []struct {
		Msg string `json:"msg"`
	}
	if json.Unmarshal(raw, &problems) == nil && len(problems) > 0 {
		return strings.TrimSpace(problems[0].Msg)
	}
	return ""
}
