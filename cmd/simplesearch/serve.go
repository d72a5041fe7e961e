package main

import (
	"fmt"

	"github.com/fwojciec/simplesearch"
	sshttp "github.com/fwojciec/simplesearch/http"
	"github.com/fwojciec/simplesearch/search"
	ssslog "github.com/fwojciec/simplesearch/slog"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if err := sshttp.ValidateSearchPath(c.SearchPath); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
		return err
	}

	templates, err := sshttp.NewTemplates(c.FormTemplate, c.ResultsTemplate)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
		return err
	}

	scanner := &search.Scanner{
		Catalog:     search.NewSiteCatalog(deps.Documents),
		Pages:       deps.Pages,
		Cache:       deps.Cache,
		Stripper:    deps.Stripper,
		Config:      deps.Config,
		Concurrency: c.Concurrency,
	}

	opts := []sshttp.Option{
		sshttp.WithLogger(deps.Logger),
		sshttp.WithSearchPath(c.SearchPath),
	}
	if deps.Cache != nil {
		opts = append(opts, sshttp.WithPageCache(deps.Cache))
	}

	srv := sshttp.NewServer(
		ssslog.NewLoggingSearcher(scanner, deps.Logger),
		deps.Documents,
		deps.Pages,
		deps.Renderer,
		templates,
		opts...,
	)

	deps.Logger.Info("listening", "addr", c.Addr, "search", c.SearchPath, "strategy", deps.Config.Strategy())
	if err := sshttp.ListenAndServe(deps.Ctx, c.Addr, srv.Handler()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}
