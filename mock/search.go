package mock

import (
	"context"

	"github.com/fwojciec/simplesearch"
)

var _ simplesearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of simplesearch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]*simplesearch.Document, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]*simplesearch.Document, error) {
	return s.SearchFn(ctx, query)
}
