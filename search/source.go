package search

import (
	"context"
	"fmt"

	"github.com/fwojciec/simplesearch"
)

// Compile-time interface verification.
var (
	_ simplesearch.ContentSource = (*DirectSource)(nil)
	_ simplesearch.ContentSource = (*CacheSource)(nil)
)

// DirectSource loads match content from the canonical page.
type DirectSource struct {
	Pages simplesearch.PageRepository
}

// Load fetches the page and returns its title and concatenated segments.
// Repository errors are returned to the caller.
func (s *DirectSource) Load(ctx context.Context, doc *simplesearch.Document) (*simplesearch.Content, error) {
	page, err := s.Pages.FindPage(ctx, doc.Path)
	if err != nil {
		return nil, fmt.Errorf("load page %q: %w", doc.Path, err)
	}
	return &simplesearch.Content{
		Title: page.Title,
		Body:  page.Body(),
	}, nil
}

// CacheSource loads match content from the rendered page cache.
// The title always comes from the catalog entry.
type CacheSource struct {
	Cache    simplesearch.PageCache
	Stripper simplesearch.TagStripper
}

// Load never fails. A missing or unreadable cache entry yields an empty body,
// so the document can still match on its title.
func (s *CacheSource) Load(ctx context.Context, doc *simplesearch.Document) (*simplesearch.Content, error) {
	content := &simplesearch.Content{Title: doc.Title}

	html, err := s.Cache.Get(ctx, simplesearch.PageCacheKey(doc.Route))
	if err != nil {
		return content, nil
	}

	text, err := s.Stripper.StripTags(html)
	if err != nil {
		return content, nil
	}
	content.Body = text
	return content, nil
}
