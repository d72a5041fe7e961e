// Package badger provides a BadgerDB-backed page cache.
package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/fwojciec/simplesearch"
)

var _ simplesearch.PageCache = (*PageCache)(nil)

// keyPrefix namespaces cache entries inside the database.
const keyPrefix = "pagecache/"

// PageCache implements simplesearch.PageCache using BadgerDB.
type PageCache struct {
	db *badger.DB
}

// loggerAdapter adapts slog.Logger to the badger.Logger interface.
type loggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*loggerAdapter)(nil)

func (l *loggerAdapter) Errorf(msg string, items ...any) {
	l.logger.Error(fmt.Sprintf(msg, items...))
}

func (l *loggerAdapter) Warningf(msg string, items ...any) {
	l.logger.Warn(fmt.Sprintf(msg, items...))
}

func (l *loggerAdapter) Infof(msg string, items ...any) {
	l.logger.Debug(fmt.Sprintf(msg, items...))
}

func (l *loggerAdapter) Debugf(msg string, items ...any) {
	l.logger.Debug(fmt.Sprintf(msg, items...))
}

// Open opens a page cache stored in dir. An empty dir opens an in-memory
// cache. The directory is created if it doesn't exist.
func Open(dir string, logger *slog.Logger) (*PageCache, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
		opts = badger.DefaultOptions(dir)
	}
	opts.Logger = &loggerAdapter{logger: logger}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return &PageCache{db: db}, nil
}

// Close closes the underlying database.
func (c *PageCache) Close() error {
	return c.db.Close()
}

// Get returns the cached HTML for key.
func (c *PageCache) Get(ctx context.Context, key string) (string, error) {
	var html []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		html, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", simplesearch.Errorf(simplesearch.ENOTFOUND, "no cache entry for %q", key)
	}
	if err != nil {
		return "", err
	}
	return string(html), nil
}

// Set stores html under key.
func (c *PageCache) Set(ctx context.Context, key string, html string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), []byte(html))
	})
}

// Clear removes every cache entry.
func (c *PageCache) Clear(ctx context.Context) error {
	return c.db.DropPrefix([]byte(keyPrefix))
}
