package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxBodySize bounds how much of a response is read.
const maxBodySize = 32 << 20

// refPlaceholder is replaced by the reference id in Options.RefURL.
const refPlaceholder = "{refId}"

// Logger is the logging interface used by the client.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Options configures a Client.
type Options struct {
	// URL is the home feed endpoint.
	URL string
	// RefURL is the set endpoint; "{refId}" is replaced by the reference id.
	RefURL string
	// ResolveRefs makes Load fetch reference sets.
	ResolveRefs   bool
	UserAgent     string
	Timeout       time.Duration
	FallbackImage string

	// Cache, when set, stores every successful response and is consulted
	// when a request fails.
	Cache *Cache
	// MaxAge bounds the age of cached responses used as a fallback.
	MaxAge time.Duration
	// Offline serves responses only from Cache.
	Offline bool

	// Concurrency bounds parallel reference fetches. Defaults to 4.
	Concurrency int

	HTTPClient *http.Client
	Logger     Logger
}

// Client fetches and parses the catalog.
type Client struct {
	opts Options
	http *http.Client
	log  Logger
}

// NewClient creates a client.
func NewClient(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	var log Logger = nopLogger{}
	if opts.Logger != nil {
		log = opts.Logger
	}
	return &Client{opts: opts, http: hc, log: log}
}

// Load fetches the home feed, resolves references when enabled and drops
// collections that end up without items.
func (c *Client) Load(ctx context.Context) ([]Collection, error) {
	cols, err := c.FetchHome(ctx)
	if err != nil {
		return nil, err
	}
	if c.opts.ResolveRefs {
		cols = c.Resolve(ctx, cols)
	}
	return NonEmpty(cols), nil
}

// FetchHome fetches and parses the home feed.
func (c *Client) FetchHome(ctx context.Context) ([]Collection, error) {
	body, err := c.get(ctx, c.opts.URL)
	if err != nil {
		return nil, err
	}
	return Parse(body, c.opts.FallbackImage)
}

// FetchSet fetches and parses the items of a referenced set.
func (c *Client) FetchSet(ctx context.Context, refID string) ([]Item, error) {
	if c.opts.RefURL == "" || refID == "" {
		return nil, ErrEmptyURL
	}
	target := strings.ReplaceAll(c.opts.RefURL, refPlaceholder, url.PathEscape(refID))
	body, err := c.get(ctx, target)
	if err != nil {
		return nil, err
	}
	return ParseSet(body, c.opts.FallbackImage)
}

// Resolve fills reference collections with their items, preserving order.
// A reference that fails to resolve is logged and dropped.
func (c *Client) Resolve(ctx context.Context, cols []Collection) []Collection {
	resolved := make([]Collection, len(cols))
	copy(resolved, cols)
	failed := make([]bool, len(cols))

	sem := make(chan struct{}, c.opts.Concurrency)
	var wg sync.WaitGroup
	for i := range resolved {
		if !resolved[i].IsRef() {
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				failed[i] = true
				return
			}
			defer func() { <-sem }()

			items, err := c.FetchSet(ctx, resolved[i].RefID)
			if err != nil {
				c.log.Warn("catalog: dropping %s: %v", describe(resolved[i]), err)
				failed[i] = true
				return
			}
			resolved[i].Items = items
		}(i)
	}
	wg.Wait()

	out := resolved[:0]
	for i, col := range resolved {
		if !failed[i] {
			out = append(out, col)
		}
	}
	return out
}

// get returns the body for target, using the cache as configured.
func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	if target == "" {
		return nil, ErrEmptyURL
	}

	if c.opts.Offline {
		if c.opts.Cache == nil {
			return nil, ErrNotCached
		}
		body, _, err := c.opts.Cache.Get(ctx, target, 0)
		return body, err
	}

	body, err := c.fetch(ctx, target)
	if err == nil {
		if c.opts.Cache != nil {
			if perr := c.opts.Cache.Put(ctx, target, body); perr != nil {
				c.log.Warn("catalog: %v", perr)
			}
		}
		return body, nil
	}

	if c.opts.Cache != nil {
		cached, at, cerr := c.opts.Cache.Get(ctx, target, c.opts.MaxAge)
		if cerr == nil {
			c.log.Warn("catalog: %v; using response cached at %s", err, at.Format(time.RFC3339))
			return cached, nil
		}
	}
	return nil, err
}

// fetch performs one GET request.
func (c *Client) fetch(ctx context.Context, target string) ([]byte, error) {
	reqID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{URL: target, RequestID: reqID, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: target, RequestID: reqID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{URL: target, Status: resp.StatusCode, RequestID: reqID, Err: ErrBadStatus}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &FetchError{URL: target, Status: resp.StatusCode, RequestID: reqID, Err: fmt.Errorf("reading body: %w", err)}
	}

	c.log.Debug("catalog: GET %s %d %d bytes in %s (request %s)", target, resp.StatusCode, len(body), time.Since(start).Round(time.Millisecond), reqID)
	return body, nil
}
