package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/summitpt/summit-go/credentials"
)

const tracerName = "github.com/summitpt/summit-go/transport"

// Client issues authenticated single-shot HTTP requests to the Summit API.
// It holds only immutable configuration and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     Config
	log        zerolog.Logger
}

// New creates a transport client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = cfg.Logger.With().Str("component", "transport").Logger()
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		log:        log,
	}, nil
}

// Do resolves the credential, executes exactly one HTTP request, and
// returns the complete response. Nothing is retried; every failure
// surfaces to the caller. On a non-2xx status both the response and a
// *Error are returned, so the envelope stays inspectable.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	requestID := uuid.New().String()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "http.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.path", req.Path),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := c.execute(ctx, req, requestID)
	duration := time.Since(start)

	evt := c.log.Debug()
	if err != nil {
		evt = c.log.Warn().Err(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	status := 0
	if resp != nil {
		status = resp.StatusCode
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	evt.Str("method", req.Method).
		Str("path", req.Path).
		Str("request_id", requestID).
		Int("status", status).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("request")

	return resp, err
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// execute builds and sends the HTTP request.
func (c *Client) execute(ctx context.Context, req Request, requestID string) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req, requestID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		return result, classErr
	}

	return result, nil
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request, requestID string) (*http.Request, error) {
	// Resolve the credential first: a missing session must fail before
	// anything touches the network.
	var token string
	if !req.NoAuth {
		if c.config.Credentials == nil {
			return nil, NewCredentialError(credentials.ErrNoSession)
		}
		t, err := c.config.Credentials.Token(ctx)
		if err != nil {
			return nil, NewCredentialError(err)
		}
		token = t
	}

	// Resolve URL
	url := req.Path
	if c.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		url = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("encode body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	// Apply query parameters
	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	// Default headers first, request-specific headers override
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.config.UserAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}
	httpReq.Header.Set("X-Request-Id", requestID)
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case []byte:
		return bytes.NewReader(v), "", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
