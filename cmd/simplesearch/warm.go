package main

import (
	"fmt"

	"github.com/fwojciec/simplesearch"
	"github.com/fwojciec/simplesearch/search"
)

// Run executes the warm command.
func (c *WarmCmd) Run(deps *Dependencies) error {
	if deps.Cache == nil {
		fmt.Fprintln(deps.Stderr, "error: page cache is disabled. Run without --no-page-cache.")
		return simplesearch.Errorf(simplesearch.EINVALID, "page cache is disabled")
	}

	warmer := &search.Warmer{
		Catalog:     search.NewSiteCatalog(deps.Documents),
		Pages:       deps.Pages,
		Renderer:    deps.Renderer,
		Cache:       deps.Cache,
		Concurrency: c.Concurrency,
	}

	n, err := warmer.Warm(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cached %d pages\n", n)
	return nil
}

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	if deps.Cache == nil {
		fmt.Fprintln(deps.Stderr, "error: page cache is disabled. Run without --no-page-cache.")
		return simplesearch.Errorf(simplesearch.EINVALID, "page cache is disabled")
	}

	if err := deps.Cache.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Page cache cleared")
	return nil
}
