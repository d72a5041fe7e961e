package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/simplesearch"
)

var _ simplesearch.PageCache = (*PageCache)(nil)

// PageCache implements simplesearch.PageCache using SQLite.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// Get returns the cached HTML for key.
func (c *PageCache) Get(ctx context.Context, key string) (string, error) {
	var html string
	err := c.db.QueryRowContext(ctx, "SELECT html FROM page_cache WHERE key = ?", key).Scan(&html)
	if err == sql.ErrNoRows {
		return "", simplesearch.Errorf(simplesearch.ENOTFOUND, "no cache entry for %q", key)
	}
	return html, err
}

// Set stores html under key. An unchanged entry keeps its original
// rendered_at timestamp.
func (c *PageCache) Set(ctx context.Context, key string, html string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO page_cache (key, html, hash, rendered_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			html = excluded.html,
			hash = excluded.hash,
			rendered_at = excluded.rendered_at
		WHERE page_cache.hash != excluded.hash
	`, key, html, hashContent(html), time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// Clear removes every cache entry.
func (c *PageCache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM page_cache")
	return err
}
