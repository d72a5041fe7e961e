package search

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fwojciec/simplesearch"
	"golang.org/x/sync/errgroup"
)

// Warmer renders catalog pages into the page cache so that cache-assisted
// search has content to match against.
type Warmer struct {
	Catalog     simplesearch.Catalog
	Pages       simplesearch.PageRepository
	Renderer    simplesearch.Renderer
	Cache       simplesearch.PageCache
	Concurrency int
}

// Warm renders every document in the catalog and stores the HTML under its
// page cache key. It returns the number of pages written.
func (w *Warmer) Warm(ctx context.Context) (int, error) {
	docs, err := w.Catalog.Documents(ctx)
	if err != nil {
		return 0, fmt.Errorf("enumerate catalog: %w", err)
	}

	concurrency := w.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var written atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, doc := range docs {
		g.Go(func() error {
			page, err := w.Pages.FindPage(gctx, doc.Path)
			if err != nil {
				return fmt.Errorf("load page %q: %w", doc.Path, err)
			}
			html, err := w.Renderer.RenderPage(page)
			if err != nil {
				return fmt.Errorf("render page %q: %w", doc.Path, err)
			}
			if err := w.Cache.Set(gctx, simplesearch.PageCacheKey(doc.Route), html); err != nil {
				return fmt.Errorf("cache page %q: %w", doc.Path, err)
			}
			written.Add(1)
			return nil
		})
	}

	err = g.Wait()
	return int(written.Load()), err
}
