package valve

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/heropedia/heropedia/internal/core/domain"
	"github.com/heropedia/heropedia/internal/core/ports/driven"
	"github.com/heropedia/heropedia/internal/htmldoc"
	"github.com/heropedia/heropedia/internal/logger"
)

const (
	// DefaultPageURL is the heroes listing page.
	DefaultPageURL = "https://www.dota2.com/heroes/"

	// DefaultFeedURL is the hero-picker feed.
	DefaultFeedURL = "https://www.dota2.com/jsfeed/heropickerdata"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxRetries is the maximum number of retries for transient errors.
	MaxRetries = 3

	// RetryDelay is the initial delay between retries.
	RetryDelay = time.Second

	// ThrottleRate is the proactive request rate. The site is a public
	// page with no quota headers, so a small constant keeps us polite.
	ThrottleRate = 2.0
)

// Ensure Client implements the driven ports.
var (
	_ driven.Fetcher     = (*Client)(nil)
	_ driven.IconFetcher = (*Client)(nil)
)

// Client fetches the heroes page and feed with retries and throttling.
type Client struct {
	httpClient *http.Client
	pageURL    string
	feedURL    string
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Useful for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithPageURL overrides the heroes page URL.
func WithPageURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.pageURL = u
		}
	}
}

// WithFeedURL overrides the feed URL.
func WithFeedURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.feedURL = u
		}
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a fetch client for the Dota 2 site.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		pageURL:    DefaultPageURL,
		feedURL:    DefaultFeedURL,
		limiter:    rate.NewLimiter(rate.Limit(ThrottleRate), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPage retrieves and parses the heroes listing page.
func (c *Client) FetchPage(ctx context.Context, language string) (*htmldoc.Document, error) {
	body, err := c.get(ctx, c.pageURL, language)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := htmldoc.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse heroes page: %w: %v", domain.ErrFetchFailed, err)
	}
	return doc, nil
}

// FetchFeed retrieves and decodes the hero-picker feed.
func (c *Client) FetchFeed(ctx context.Context, language string) (domain.Feed, error) {
	body, err := c.get(ctx, c.feedURL, language)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var feed domain.Feed
	if err := json.NewDecoder(body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode hero feed: %w: %v", domain.ErrFetchFailed, err)
	}
	return feed, nil
}

// FetchIcon retrieves the image bytes at the given URL.
func (c *Client) FetchIcon(ctx context.Context, iconURL string) ([]byte, error) {
	body, err := c.get(ctx, iconURL, "")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read icon: %w: %v", domain.ErrFetchFailed, err)
	}
	return data, nil
}

// get issues a throttled GET with retries, appending the language query
// parameter when non-empty. The caller owns the returned body.
func (c *Client) get(ctx context.Context, rawURL, language string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL %q: %w", rawURL, err)
	}
	if language != "" {
		q := u.Query()
		q.Set("l", language)
		u.RawQuery = q.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			delay := RetryDelay * time.Duration(1<<(attempt-1))
			logger.Debug("retrying %s in %s (attempt %d)", u, delay, attempt)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, retryable, err := c.getOnce(ctx, u.String())
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}

	return nil, lastErr
}

func (c *Client) getOnce(ctx context.Context, fullURL string) (io.ReadCloser, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}

	logger.Debug("GET %s", fullURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport errors (DNS, timeout) are worth retrying.
		return nil, true, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		statusErr := &StatusError{StatusCode: resp.StatusCode, URL: fullURL}
		// Server-side failures may be transient; client errors are not.
		return nil, resp.StatusCode >= 500, statusErr
	}

	return resp.Body, false, nil
}
