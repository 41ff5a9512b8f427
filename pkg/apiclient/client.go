package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/storefront/pkg/cache"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/requestid"
)

const (
	defaultUserAgent = "storefront-client/1.0"
	maxErrorBody     = 64 * 1024
)

// Client is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	http       *http.Client
	timeout    time.Duration
	userAgent  string
	maxRetries int
	backoff    BackoffStrategy
	cache      *cache.LRU[string, []byte]
	logger     *slog.Logger
}

// cacheable lists the reference data kept by WithCache.
var cacheable = map[string]bool{
	"/genres/":    true,
	"/platforms/": true,
}

// New validates baseURL and builds a client.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL: u,
		http: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout:    10 * time.Second,
		userAgent:  defaultUserAgent,
		maxRetries: 2,
		backoff:    DefaultBackoff(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	useCache := c.cache != nil && cacheable[path]
	if useCache {
		if data, ok := c.cache.Get(path); ok {
			return c.decode(http.MethodGet, path, http.StatusOK, data, out)
		}
	}

	ctx, _ = requestid.Ensure(ctx)
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return c.transportError(http.MethodGet, path, ctx.Err())
			case <-time.After(c.backoff.NextInterval(attempt)):
			}
		}

		data, err := c.do(ctx, http.MethodGet, path, nil)
		if err == nil {
			if err := c.decode(http.MethodGet, path, http.StatusOK, data, out); err != nil {
				return err
			}
			if useCache {
				c.cache.Put(path, data)
			}
			return nil
		}
		lastErr = err

		var apiErr *Error
		if !errors.As(err, &apiErr) || !apiErr.Temporary() || ctx.Err() != nil {
			return err
		}
		c.logger.LogAttrs(ctx, slog.LevelWarn, "api request failed, retrying",
			slog.String("path", path),
			slog.Int("attempt", attempt+1),
			slog.Int("status", apiErr.StatusCode),
			logger.Error(err),
		)
	}
	return lastErr
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	ctx, _ = requestid.Ensure(ctx)
	data, err := c.do(ctx, http.MethodPost, path, in)
	if err != nil {
		return err
	}
	return c.decode(http.MethodPost, path, http.StatusOK, data, out)
}

// do performs a single attempt and returns the response body of a 2xx
// response.
func (c *Client) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	start := time.Now()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, &Error{Method: method, Path: path, Message: "could not encode request", Err: err}
		}
		body = bytes.NewReader(payload)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL.String()+path, body)
	if err != nil {
		return nil, &Error{Method: method, Path: path, Message: "could not build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.LogAttrs(ctx, slog.LevelDebug, "api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		logger.Duration(time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &Error{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    detailMessage(data, resp.StatusCode),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(method, path, err)
	}
	return data, nil
}

// decode unmarshals a successful response body into out. A nil out
// ignores the body.
func (c *Client) decode(method, path string, status int, data []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{
			Method:     method,
			Path:       path,
			StatusCode: status,
			Message:    "unexpected response from server",
			Err:        err,
		}
	}
	return nil
}

func (c *Client) transportError(method, path string, err error) *Error {
	msg := "service unavailable, please try again later"
	if errors.Is(err, context.DeadlineExceeded) {
		msg = "request timed out"
	}
	if errors.Is(err, context.Canceled) {
		msg = "request cancelled"
	}
	return &Error{Method: method, Path: path, Message: msg, Err: err}
}

type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// detailMessage extracts the backend's "detail" field, which is either a
// string or a list of validation items, falling back to the status text.
func detailMessage(body []byte, status int) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Detail, &s); err == nil && s != "" {
			return s
		}
		var items []validationItem
		if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				if it.Msg != "" {
					msgs = append(msgs, it.Msg)
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, "; ")
			}
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", status)
}
