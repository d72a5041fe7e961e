package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/simplesearch"
)

// Ensure LoggingPageCache implements simplesearch.PageCache.
var _ simplesearch.PageCache = (*LoggingPageCache)(nil)

// LoggingPageCache wraps a PageCache and logs misses and failures at debug
// and warn level respectively.
type LoggingPageCache struct {
	next   simplesearch.PageCache
	logger *slog.Logger
}

// NewLoggingPageCache creates a new LoggingPageCache.
func NewLoggingPageCache(next simplesearch.PageCache, logger *slog.Logger) *LoggingPageCache {
	return &LoggingPageCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache.
func (c *LoggingPageCache) Get(ctx context.Context, key string) (string, error) {
	html, err := c.next.Get(ctx, key)
	switch {
	case err == nil:
	case simplesearch.ErrorCode(err) == simplesearch.ENOTFOUND:
		c.logger.Debug("page cache miss", "key", key)
	default:
		c.logger.Warn("page cache read failed", "key", key, "err", err)
	}
	return html, err
}

// Set delegates to the wrapped cache.
func (c *LoggingPageCache) Set(ctx context.Context, key string, html string) error {
	err := c.next.Set(ctx, key, html)
	if err != nil {
		c.logger.Warn("page cache write failed", "key", key, "err", err)
	}
	return err
}

// Clear delegates to the wrapped cache and logs the operation.
func (c *LoggingPageCache) Clear(ctx context.Context) error {
	err := c.next.Clear(ctx)
	c.logger.Info("page cache cleared", "err", err)
	return err
}
