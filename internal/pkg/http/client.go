package http

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

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	"github.com/piresc/rideflex-admin/internal/pkg/circuitbreaker"
	appctx "github.com/piresc/rideflex-admin/internal/pkg/context"
	"github.com/piresc/rideflex-admin/internal/pkg/logger"
	"github.com/piresc/rideflex-admin/internal/pkg/retry"
)

// DefaultTimeout for backend requests
const DefaultTimeout = 30 * time.Second

// maxErrorBody bounds how much of an error body is kept for display
const maxErrorBody = 4 << 10

// Config holds the backend client configuration
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// Request describes a single backend call. Op prefixes every error
// (e.g. "Refund failed") so callers can show it verbatim.
type Request struct {
	Op     string
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	Token  string
}

// Client is the JSON client for the RideFlex backend. GET requests are
// retried on network and 5xx errors; every other method is sent once.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retrier    *retry.Retrier
	breakers   *circuitbreaker.Manager
	logger     *logger.ZapLogger
}

// NewClient creates a backend client
func NewClient(cfg Config, l *logger.ZapLogger) *Client {
	if l == nil {
		l = logger.NewNopLogger()
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.MaxRetries
	retryCfg.IsRetryable = isTransient

	breakerCfg := circuitbreaker.DefaultConfig("")
	breakerCfg.IsFailure = isTransient

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newrelic.NewRoundTripper(http.DefaultTransport),
		},
		retrier:  retry.New(retryCfg, l),
		breakers: circuitbreaker.NewManager(breakerCfg, l),
		logger:   l,
	}
}

// BaseURL returns the backend base URL without trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BreakerStats returns the state of every backend circuit breaker
func (c *Client) BreakerStats() map[string]string {
	return c.breakers.Stats()
}

// Do sends req and decodes a 2xx JSON body into out (when out is non-nil).
// Non-2xx responses return *apperrors.HTTPError with the body verbatim;
// transport failures return *apperrors.NetworkError.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	if req.Method == "" {
		req.Method = http.MethodGet
	}

	target, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return fmt.Errorf("%s: %w", req.Op, err)
	}

	var payload []byte
	if req.Body != nil {
		payload, err = json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", req.Op, err)
		}
	}

	host := target.Host
	if host == "" {
		host = "unknown"
	}

	attempt := func(ctx context.Context) error {
		return c.breakers.Execute(ctx, host, func(ctx context.Context) error {
			return c.send(ctx, req, target.String(), payload, out)
		})
	}

	if req.Method == http.MethodGet {
		return c.retrier.Execute(ctx, attempt)
	}
	return attempt(ctx)
}

// GetJSON performs an authenticated GET and decodes the response
func (c *Client) GetJSON(ctx context.Context, op, path string, query url.Values, token string, out interface{}) error {
	return c.Do(ctx, Request{Op: op, Method: http.MethodGet, Path: path, Query: query, Token: token}, out)
}

// PostJSON performs an authenticated POST with a JSON body
func (c *Client) PostJSON(ctx context.Context, op, path string, body interface{}, token string, out interface{}) error {
	return c.Do(ctx, Request{Op: op, Method: http.MethodPost, Path: path, Body: body, Token: token}, out)
}

func (c *Client) send(ctx context.Context, req Request, target string, payload []byte, out interface{}) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return fmt.Errorf("%s: %w", req.Op, err)
	}

	requestID := appctx.EnsureRequestID(ctx)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("Backend request failed",
			logger.String("method", req.Method),
			logger.String("path", req.Path),
			logger.String("request_id", requestID),
			logger.Err(err))
		return &apperrors.NetworkError{Op: req.Op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("Backend request completed",
		logger.String("method", req.Method),
		logger.String("path", req.Path),
		logger.String("request_id", requestID),
		logger.Int("status", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &apperrors.HTTPError{
			Op:         req.Op,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       string(raw),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.NetworkError{Op: req.Op, Err: err}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", req.Op, err)
	}
	return nil
}

func (c *Client) buildURL(path string, query url.Values) (*url.URL, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u, nil
}

// isTransient reports whether err is worth retrying and counts against the breaker
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if apperrors.IsNetwork(err) {
		return true
	}
	if h, ok := apperrors.AsHTTP(err); ok {
		return h.StatusCode >= 500
	}
	return false
}
