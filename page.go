package simplesearch

import (
	"context"
	"strings"
)

// Segment is a named block of page content.
type Segment struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Page represents the canonical, fully loaded representation of a document.
type Page struct {
	Path     string
	Route    string
	Title    string
	Segments []Segment
}

// Body concatenates all segment contents in order with no separator.
func (p *Page) Body() string {
	var b strings.Builder
	for _, s := range p.Segments {
		b.WriteString(s.Content)
	}
	return b.String()
}

// PageRepository loads pages on demand.
type PageRepository interface {
	// FindPage loads the page stored at path.
	// Returns ENOTFOUND if the page does not exist.
	FindPage(ctx context.Context, path string) (*Page, error)
}

// PageCacheKey returns the cache key under which the rendered page for route
// is stored.
func PageCacheKey(route string) string {
	return "page-" + route
}

// PageCache stores rendered page HTML.
type PageCache interface {
	// Get returns the cached HTML stored under key.
	// Returns ENOTFOUND if there is no entry.
	Get(ctx context.Context, key string) (string, error)

	// Set stores html under key, replacing any existing entry.
	Set(ctx context.Context, key string, html string) error

	// Clear removes every entry.
	Clear(ctx context.Context) error
}

// Renderer renders a page to HTML.
type Renderer interface {
	RenderPage(page *Page) (string, error)
}

// TagStripper removes markup from HTML and returns its text content.
type TagStripper interface {
	StripTags(html string) (string, error)
}
