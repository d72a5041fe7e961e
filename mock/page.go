package mock

import (
	"context"

	"github.com/fwojciec/simplesearch"
)

// Compile-time interface verification.
var (
	_ simplesearch.PageRepository = (*PageRepository)(nil)
	_ simplesearch.PageCache      = (*PageCache)(nil)
	_ simplesearch.Renderer       = (*Renderer)(nil)
	_ simplesearch.TagStripper    = (*TagStripper)(nil)
)

// PageRepository is a mock implementation of simplesearch.PageRepository.
type PageRepository struct {
	FindPageFn func(ctx context.Context, path string) (*simplesearch.Page, error)
}

func (r *PageRepository) FindPage(ctx context.Context, path string) (*simplesearch.Page, error) {
	return r.FindPageFn(ctx, path)
}

// PageCache is a mock implementation of simplesearch.PageCache.
type PageCache struct {
	GetFn   func(ctx context.Context, key string) (string, error)
	SetFn   func(ctx context.Context, key string, html string) error
	ClearFn func(ctx context.Context) error
}

func (c *PageCache) Get(ctx context.Context, key string) (string, error) {
	return c.GetFn(ctx, key)
}

func (c *PageCache) Set(ctx context.Context, key string, html string) error {
	return c.SetFn(ctx, key, html)
}

func (c *PageCache) Clear(ctx context.Context) error {
	return c.ClearFn(ctx)
}

// Renderer is a mock implementation of simplesearch.Renderer.
type Renderer struct {
	RenderPageFn func(page *simplesearch.Page) (string, error)
}

func (r *Renderer) RenderPage(page *simplesearch.Page) (string, error) {
	return r.RenderPageFn(page)
}

// TagStripper is a mock implementation of simplesearch.TagStripper.
type TagStripper struct {
	StripTagsFn func(html string) (string, error)
}

func (s *TagStripper) StripTags(html string) (string, error) {
	return s.StripTagsFn(html)
}
