package search

import (
	"context"
	"fmt"

	"github.com/fwojciec/simplesearch"
)

var _ simplesearch.Catalog = (*CollectionCatalog)(nil)

// CollectionCatalog enumerates a single collection from a DocumentService.
type CollectionCatalog struct {
	Service    simplesearch.DocumentService
	Collection simplesearch.Collection
}

// Documents returns the collection's documents ordered by position.
func (c *CollectionCatalog) Documents(ctx context.Context) ([]*simplesearch.Document, error) {
	collection := c.Collection
	docs, err := c.Service.FindDocuments(ctx, simplesearch.DocumentFilter{Collection: &collection})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	return docs, nil
}

// NewSiteCatalog returns a catalog of all pages followed by all posts.
func NewSiteCatalog(svc simplesearch.DocumentService) simplesearch.Catalog {
	catalogs := make([]simplesearch.Catalog, 0, len(simplesearch.Collections))
	for _, collection := range simplesearch.Collections {
		catalogs = append(catalogs, &CollectionCatalog{Service: svc, Collection: collection})
	}
	return simplesearch.MultiCatalog(catalogs...)
}
