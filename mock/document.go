package mock

import (
	"context"

	"github.com/fwojciec/simplesearch"
)

var (
	_ simplesearch.DocumentService = (*DocumentService)(nil)
	_ simplesearch.Catalog         = (*Catalog)(nil)
)

// DocumentService is a mock implementation of simplesearch.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *simplesearch.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*simplesearch.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter simplesearch.DocumentFilter) ([]*simplesearch.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *simplesearch.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*simplesearch.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter simplesearch.DocumentFilter) ([]*simplesearch.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

// Catalog is a mock implementation of simplesearch.Catalog.
type Catalog struct {
	DocumentsFn func(ctx context.Context) ([]*simplesearch.Document, error)
}

func (c *Catalog) Documents(ctx context.Context) ([]*simplesearch.Document, error) {
	return c.DocumentsFn(ctx)
}
