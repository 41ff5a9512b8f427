package apiclient

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/storefront/pkg/cache"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTimeout bounds each attempt. Default is 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.timeout = d
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		if ua != "" {
			cl.userAgent = ua
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// WithMaxRetries sets how many times a read is retried. Default is 2;
// 0 disables retries.
func WithMaxRetries(n int) Option {
	return func(cl *Client) {
		if n >= 0 {
			cl.maxRetries = n
		}
	}
}

func WithBackoff(b BackoffStrategy) Option {
	return func(cl *Client) {
		if b != nil {
			cl.backoff = b
		}
	}
}

// WithCache keeps genre and platform listings in c between calls.
func WithCache(c *cache.LRU[string, []byte]) Option {
	return func(cl *Client) {
		cl.cache = c
	}
}
