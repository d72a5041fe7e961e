// Package search implements the site search: a bounded linear scan over the
// catalog with case-insensitive substring matching against each document's
// title and body.
package search

// MaxResults is the hard cap on the number of documents a search returns.
const MaxResults = 100

// Strategy selects how match content is loaded for each document.
type Strategy int

const (
	// StrategyDirect loads every page from the page repository.
	StrategyDirect Strategy = iota

	// StrategyCacheAssisted reads previously rendered HTML from the page cache.
	StrategyCacheAssisted
)

func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyCacheAssisted:
		return "cache-assisted"
	default:
		return "unknown"
	}
}

// Config holds the search settings.
type Config struct {
	// UsePageCache enables the cache-assisted strategy.
	UsePageCache bool
}

// NewConfig returns a Config. The page cache is used only when it is enabled
// for the whole site and for search.
func NewConfig(pageCacheEnabled, usePageCache bool) Config {
	return Config{UsePageCache: pageCacheEnabled && usePageCache}
}

// Strategy returns the content loading strategy selected by the config.
func (c Config) Strategy() Strategy {
	if c.UsePageCache {
		return StrategyCacheAssisted
	}
	return StrategyDirect
}
