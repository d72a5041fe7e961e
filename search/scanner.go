package search

import (
	"context"
	"fmt"

	"github.com/fwojciec/simplesearch"
	"golang.org/x/sync/errgroup"
)

var _ simplesearch.Searcher = (*Scanner)(nil)

// Scanner searches the catalog by loading and matching every eligible
// document in catalog order.
type Scanner struct {
	Catalog  simplesearch.Catalog
	Pages    simplesearch.PageRepository
	Cache    simplesearch.PageCache
	Stripper simplesearch.TagStripper
	Config   Config

	// Concurrency bounds parallel content loading. Values below 2 load
	// documents one at a time. Results are identical either way.
	Concurrency int
}

// Search returns up to MaxResults documents matching query, in catalog order.
// A blank query returns nil without touching the catalog.
func (s *Scanner) Search(ctx context.Context, query string) ([]*simplesearch.Document, error) {
	if IsBlank(query) {
		return nil, nil
	}

	source, err := s.source()
	if err != nil {
		return nil, err
	}

	docs, err := s.Catalog.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate catalog: %w", err)
	}

	candidates := make([]*simplesearch.Document, 0, len(docs))
	for _, doc := range docs {
		if doc.Searchable() {
			candidates = append(candidates, doc)
		}
	}

	if s.Concurrency > 1 {
		return s.scanWindows(ctx, query, source, candidates)
	}
	return s.scan(ctx, query, source, candidates)
}

// source selects the content source for the configured strategy.
func (s *Scanner) source() (simplesearch.ContentSource, error) {
	switch s.Config.Strategy() {
	case StrategyCacheAssisted:
		if s.Cache == nil || s.Stripper == nil {
			return nil, simplesearch.Errorf(simplesearch.EINVALID, "page cache search requires a cache and a tag stripper")
		}
		return &CacheSource{Cache: s.Cache, Stripper: s.Stripper}, nil
	default:
		if s.Pages == nil {
			return nil, simplesearch.Errorf(simplesearch.EINVALID, "direct search requires a page repository")
		}
		return &DirectSource{Pages: s.Pages}, nil
	}
}

func (s *Scanner) scan(ctx context.Context, query string, source simplesearch.ContentSource, candidates []*simplesearch.Document) ([]*simplesearch.Document, error) {
	var results []*simplesearch.Document
	for _, doc := range candidates {
		content, err := source.Load(ctx, doc)
		if err != nil {
			return nil, err
		}
		if Match(query, content.Parts()...) {
			results = append(results, doc)
			if len(results) >= MaxResults {
				break
			}
		}
	}
	return results, nil
}

// scanWindows loads each window of candidates in parallel, then matches the
// window sequentially so ordering and the cap match scan exactly.
func (s *Scanner) scanWindows(ctx context.Context, query string, source simplesearch.ContentSource, candidates []*simplesearch.Document) ([]*simplesearch.Document, error) {
	var results []*simplesearch.Document
	window := s.Concurrency

	for start := 0; start < len(candidates); start += window {
		batch := candidates[start:min(start+window, len(candidates))]
		contents := make([]*simplesearch.Content, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		for i, doc := range batch {
			g.Go(func() error {
				content, err := source.Load(gctx, doc)
				if err != nil {
					return err
				}
				contents[i] = content
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for i, content := range contents {
			if Match(query, content.Parts()...) {
				results = append(results, batch[i])
				if len(results) >= MaxResults {
					return results, nil
				}
			}
		}
	}
	return results, nil
}
