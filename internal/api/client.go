// ABOUTME: HTTP client for the workout backend REST API.
// ABOUTME: Issues JSON requests, maps responses to models, and optionally caches GETs briefly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is used when neither the environment nor the config names a backend.
	DefaultBaseURL = "http://localhost:8000"

	defaultTimeout   = 10 * time.Second
	defaultCacheSize = 8 * 1024 * 1024
)

// Client talks to the backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *freecache.Cache
	cacheTTL   int
	metrics    *Metrics

	// cacheMu orders cache fills against invalidation. cacheGen counts
	// invalidations so a GET that raced a write does not store its response.
	cacheMu  sync.Mutex
	cacheGen uint64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout on the client's http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithCache enables the in-memory GET response cache. Entries expire after
// ttlSeconds and the whole cache is dropped after any write made through this
// client. Writes by other clients are not seen until entries expire, so the
// cache is off unless ttlSeconds is positive.
func WithCache(ttlSeconds int) Option {
	return func(c *Client) {
		if ttlSeconds <= 0 {
			return
		}
		c.cache = freecache.NewCache(defaultCacheSize)
		c.cacheTTL = ttlSeconds
	}
}

// WithMetrics instruments the client.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends one request. body is JSON-encoded when non-nil; the response is
// decoded into out when out is non-nil and the body is not empty.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var gen uint64
	if c.cache != nil {
		if method != http.MethodGet {
			defer c.invalidate()
		}
		gen = c.generation()
	}
	if method == http.MethodGet && c.cache != nil {
		if cached, err := c.cache.Get([]byte(path)); err == nil {
			if c.metrics != nil {
				c.metrics.CounterCacheHits.Inc()
			}
			slog.Debug("api cache hit", "op", op, "path", path)
			return decode(cached, out, method, path)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Op: op, Method: method, Path: path, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(op, "error", start)
		slog.Debug("api request failed", "op", op, "method", method, "path", path,
			"request_id", requestID, "error", err)
		return &Error{Op: op, Method: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(op, "error", start)
		return &Error{Op: op, Method: method, Path: path, StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}

	c.observe(op, strconv.Itoa(resp.StatusCode), start)
	slog.Debug("api request",
		"op", op,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Op:         op,
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if c.cache != nil && method == http.MethodGet {
		c.fill(path, data, gen)
	}

	return decode(data, out, method, path)
}

func (c *Client) generation() uint64 {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	return c.cacheGen
}

// fill stores a GET response unless the cache was invalidated after the
// request started.
func (c *Client) fill(path string, data []byte, gen uint64) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	if gen != c.cacheGen {
		slog.Debug("api cache fill skipped", "path", path)
		return
	}
	if err := c.cache.Set([]byte(path), data, c.cacheTTL); err != nil {
		slog.Debug("api cache set failed", "path", path, "error", err)
	}
}

func (c *Client) invalidate() {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	c.cacheGen++
	c.cache.Clear()
}

func (c *Client) observe(op, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.CounterRequests.WithLabelValues(op, status).Inc()
	c.metrics.HistDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func decode(data []byte, out any, method, path string) error {
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
