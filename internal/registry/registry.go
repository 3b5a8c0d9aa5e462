// Package registry serves the requirement catalog from a remote registry,
// falling back to the catalog compiled into the binary.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"

	dErrors "residence-intake/internal/domainerrors"
	"residence-intake/internal/logger"
	"residence-intake/internal/metrics"
	"residence-intake/internal/requirements"
)

const (
	catalogPath    = "/catalog"
	defaultTimeout = 2 * time.Second
)

// Client fetches the catalog once and serves the cached copy afterwards. A
// failed fetch caches the fallback until the next Refresh; Watch refreshes
// periodically.
type Client struct {
	url      string
	timeout  time.Duration
	http     *fasthttp.Client
	fallback *requirements.Catalog

	cached atomic.Pointer[requirements.Catalog]
	group  singleflight.Group

	metrics *metrics.Metrics
	logger  *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the fasthttp client, mainly for tests.
func WithHTTPClient(hc *fasthttp.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithMetrics sets the metrics collector for the client.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithLogger sets the logger for the client.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New returns a client for the registry at url. An empty url disables remote
// fetching and the fallback is always served.
func New(url string, timeout time.Duration, fallback *requirements.Catalog, opts ...Option) *Client {
	if fallback == nil {
		panic("registry.New: fallback catalog is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		url:      url,
		timeout:  timeout,
		fallback: fallback,
		logger:   logger.Discard(),
		http: &fasthttp.Client{
			Name:                "residence-intake",
			MaxConnsPerHost:     16,
			MaxIdleConnDuration: 90 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the cached catalog, fetching it on first use. Concurrent
// first calls share one fetch.
func (c *Client) Catalog() *requirements.Catalog {
	if c.url == "" {
		return c.fallback
	}
	if cat := c.cached.Load(); cat != nil {
		return cat
	}

	v, _, _ := c.group.Do("catalog", func() (any, error) {
		if cat := c.cached.Load(); cat != nil {
			return cat, nil
		}
		cat, err := c.fetch()
		if err != nil {
			c.logger.Warn("requirement registry unavailable; using embedded catalog",
				"url", c.url,
				"error", err,
			)
			cat = c.fallback
		}
		c.cached.Store(cat)
		return cat, nil
	})
	return v.(*requirements.Catalog)
}

// Refresh fetches the catalog again and replaces the cached copy. On error
// the cached copy is kept.
func (c *Client) Refresh() error {
	if c.url == "" {
		return nil
	}
	_, err, _ := c.group.Do("catalog", func() (any, error) {
		cat, err := c.fetch()
		if err != nil {
			return nil, err
		}
		c.cached.Store(cat)
		return cat, nil
	})
	return err
}

// Watch calls Refresh every interval until ctx is done, so a catalog pinned
// to the fallback by a failed first fetch recovers once the registry is back.
// It returns at once when no url is configured or interval is not positive.
func (c *Client) Watch(ctx context.Context, interval time.Duration) {
	if c.url == "" || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(); err != nil {
				c.logger.Warn("requirement catalog refresh failed; keeping cached catalog",
					"url", c.url,
					"error", err,
				)
			}
		}
	}
}

func (c *Client) fetch() (*requirements.Catalog, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url + catalogPath)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/yaml")

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		c.countFetch("error")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "fetch requirement catalog")
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		c.countFetch("error")
		return nil, dErrors.New(dErrors.CodeInternal, fmt.Sprintf("requirement registry returned status %d", resp.StatusCode()))
	}

	cat, err := requirements.Parse(resp.Body())
	if err != nil {
		c.countFetch("invalid")
		return nil, err
	}

	c.countFetch("success")
	c.logger.Info("requirement catalog loaded from registry",
		"url", c.url,
		"documents", len(cat.Documents),
	)
	return cat, nil
}

func (c *Client) countFetch(result string) {
	if c.metrics != nil {
		c.metrics.IncrementCatalogFetch(result)
	}
}
