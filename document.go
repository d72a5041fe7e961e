package simplesearch

import (
	"context"
	"time"
)

// Collection identifies the collection a document belongs to.
type Collection string

// Supported collections. Search enumerates pages before posts.
const (
	CollectionPages Collection = "pages"
	CollectionPosts Collection = "posts"
)

// Collections lists all collections in search enumeration order.
var Collections = []Collection{CollectionPages, CollectionPosts}

// Valid reports whether c is a known collection.
func (c Collection) Valid() bool {
	return c == CollectionPages || c == CollectionPosts
}

// Document represents a catalog entry for a page or post.
type Document struct {
	ID         string     `json:"id"`
	Collection Collection `json:"collection"`
	Path       string     `json:"path"`
	Route      string     `json:"route"`
	Title      string     `json:"title"`

	// ExcludeFromSearch removes the document from every search result.
	ExcludeFromSearch bool `json:"excludeFromSearch"`

	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`

	// Segments holds the content on the write path only.
	// Catalog enumeration leaves it empty; use PageRepository to load content.
	Segments []Segment `json:"segments,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if !d.Collection.Valid() {
		return Errorf(EINVALID, "document collection %q invalid", d.Collection)
	}
	return nil
}

// Searchable reports whether the document takes part in search at all.
// Documents without a title or flagged ExcludeFromSearch never match.
func (d *Document) Searchable() bool {
	return d.Title != "" && !d.ExcludeFromSearch
}

// DocumentWriter writes documents to storage.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document together with its segments.
	// Returns ECONFLICT if a document with the same path exists.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter,
	// ordered by collection position.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document and its segments.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID         *string     `json:"id"`
	Collection *Collection `json:"collection"`
	Path       *string     `json:"path"`
	Route      *string     `json:"route"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Catalog enumerates searchable documents in a stable, deterministic order.
type Catalog interface {
	Documents(ctx context.Context) ([]*Document, error)
}

// CatalogFunc adapts a function to the Catalog interface.
type CatalogFunc func(ctx context.Context) ([]*Document, error)

// Documents calls fn(ctx).
func (fn CatalogFunc) Documents(ctx context.Context) ([]*Document, error) {
	return fn(ctx)
}

// MultiCatalog returns a Catalog that concatenates the given catalogs,
// preserving the order of each one. The first error aborts enumeration.
func MultiCatalog(catalogs ...Catalog) Catalog {
	return CatalogFunc(func(ctx context.Context) ([]*Document, error) {
		var docs []*Document
		for _, c := range catalogs {
			part, err := c.Documents(ctx)
			if err != nil {
				return nil, err
			}
			docs = append(docs, part...)
		}
		return docs, nil
	})
}
