package main

import (
	"fmt"

	"github.com/fwojciec/simplesearch"
	"github.com/fwojciec/simplesearch/fs"
	"github.com/fwojciec/simplesearch/search"
	ssslog "github.com/fwojciec/simplesearch/slog"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	scanner := &search.Scanner{
		Catalog:     search.NewSiteCatalog(deps.Documents),
		Pages:       deps.Pages,
		Cache:       deps.Cache,
		Stripper:    deps.Stripper,
		Config:      deps.Config,
		Concurrency: c.Concurrency,
	}
	if c.Dir != "" {
		site := fs.NewCatalog(c.Dir)
		scanner.Catalog = site
		scanner.Pages = site
	}

	var searcher simplesearch.Searcher = scanner
	if deps.Logger != nil {
		searcher = ssslog.NewLoggingSearcher(scanner, deps.Logger)
	}

	docs, err := searcher.Search(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q\n", c.Query)
		return nil
	}

	fmt.Fprintln(deps.Stdout, simplesearch.FormatResults(docs))
	return nil
}
