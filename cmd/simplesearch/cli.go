package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/simplesearch"
	"github.com/fwojciec/simplesearch/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Documents simplesearch.DocumentService
	Pages     simplesearch.PageRepository
	Renderer  simplesearch.Renderer
	Stripper  simplesearch.TagStripper

	// Cache is nil when the page cache is disabled.
	Cache  simplesearch.PageCache
	Config search.Config
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"Load flag values from a JSON configuration file"`

	DB           string `name:"db" env:"SIMPLESEARCH_DB" help:"Database path"`
	PageCache    bool   `name:"page-cache" env:"SIMPLESEARCH_PAGE_CACHE" default:"true" negatable:"" help:"Enable the rendered page cache"`
	UsePageCache bool   `name:"use-page-cache" env:"SIMPLESEARCH_USE_PAGE_CACHE" negatable:"" help:"Match against cached page HTML instead of loading pages"`
	CacheBackend string `name:"cache-backend" env:"SIMPLESEARCH_CACHE_BACKEND" enum:"sqlite,badger" default:"sqlite" help:"Page cache backend (sqlite, badger)"`
	BadgerDir    string `name:"badger-dir" env:"SIMPLESEARCH_BADGER_DIR" help:"Badger data directory (empty for in-memory)"`
	Verbose      bool   `short:"v" help:"Enable debug logging"`

	Import ImportCmd `cmd:"" help:"Import pages and posts from a site directory"`
	Export ExportCmd `cmd:"" help:"Export stored documents to a site directory"`
	List   ListCmd   `cmd:"" help:"List stored documents"`
	Search SearchCmd `cmd:"" help:"Search page and post titles and content"`
	Warm   WarmCmd   `cmd:"" help:"Render all pages into the page cache"`
	Cache  CacheCmd  `cmd:"" help:"Manage the page cache"`
	Serve  ServeCmd  `cmd:"" help:"Serve the search page and rendered pages over HTTP"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Dir   string `arg:"" type:"existingdir" help:"Site directory containing pages/ and posts/"`
	Force bool   `short:"f" help:"Replace documents that already exist"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Target site directory (replaced on success)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Collection string `short:"c" help:"Only list one collection (pages, posts)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       string `arg:"" help:"Text to search for"`
	Dir         string `short:"d" help:"Search a site directory instead of the database"`
	Concurrency int    `short:"c" default:"1" help:"Pages loaded in parallel"`
}

// WarmCmd is the "warm" subcommand.
type WarmCmd struct {
	Concurrency int `short:"c" default:"4" help:"Pages rendered in parallel"`
}

// CacheCmd groups page cache subcommands.
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove every cached page"`
}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr            string `short:"a" default:"localhost:8080" help:"Listen address"`
	SearchPath      string `name:"search-path" default:"/search" help:"Route of the search page"`
	FormTemplate    string `name:"form-template" help:"Override the search form template"`
	ResultsTemplate string `name:"results-template" help:"Override the search results template"`
	Concurrency     int    `short:"c" default:"1" help:"Pages loaded in parallel per search"`
}
