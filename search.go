package simplesearch

import "context"

// Searcher performs a search over the site catalog.
type Searcher interface {
	// Search returns the documents matching query in catalog order.
	// An empty query returns no documents and touches no storage.
	Search(ctx context.Context, query string) ([]*Document, error)
}

// Content is the match data extracted from a document.
type Content struct {
	Title string
	Body  string
}

// Parts returns the match parts in test order: title, then body.
func (c *Content) Parts() []string {
	return []string{c.Title, c.Body}
}

// ContentSource loads the match data for a catalog entry.
type ContentSource interface {
	Load(ctx context.Context, doc *Document) (*Content, error)
}
