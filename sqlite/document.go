package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/simplesearch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ simplesearch.DocumentService = (*DocumentService)(nil)
	_ simplesearch.PageRepository  = (*DocumentService)(nil)
)

// DocumentService implements simplesearch.DocumentService and
// simplesearch.PageRepository using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

const documentColumns = "id, collection, path, route, title, no_search, position, created_at"

// CreateDocument creates a new document and stores its segments in order.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *simplesearch.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existing int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents WHERE path = ?", doc.Path).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return simplesearch.Errorf(simplesearch.ECONFLICT, "document %q already exists", doc.Path)
	}

	doc.ID = uuid.New().String()
	doc.CreatedAt = time.Now().UTC()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, string(doc.Collection), doc.Path, doc.Route, doc.Title, doc.ExcludeFromSearch,
		doc.Position, doc.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, seg := range doc.Segments {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO segments (document_id, position, name, content)
			VALUES (?, ?, ?, ?)
		`, doc.ID, i, seg.Name, seg.Content); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*simplesearch.Document, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE id = ?", id)
	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, simplesearch.Errorf(simplesearch.ENOTFOUND, "document not found")
	}
	return doc, err
}

// FindDocuments retrieves documents matching the filter.
// Pages sort before posts; each collection is ordered by position, then path.
func (s *DocumentService) FindDocuments(ctx context.Context, filter simplesearch.DocumentFilter) ([]*simplesearch.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Collection != nil {
		query.WriteString(" AND collection = ?")
		args = append(args, string(*filter.Collection))
	}
	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}
	if filter.Route != nil {
		query.WriteString(" AND route = ?")
		args = append(args, *filter.Route)
	}

	query.WriteString(" ORDER BY CASE collection WHEN 'pages' THEN 0 ELSE 1 END, position ASC, path ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*simplesearch.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document and its segments.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return simplesearch.Errorf(simplesearch.ENOTFOUND, "document not found")
	}

	return nil
}

// FindPage loads the document stored at path together with its segments.
func (s *DocumentService) FindPage(ctx context.Context, path string) (*simplesearch.Page, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE path = ?", path)
	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, simplesearch.Errorf(simplesearch.ENOTFOUND, "page %q not found", path)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, content FROM segments
		WHERE document_id = ?
		ORDER BY position ASC
	`, doc.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	page := &simplesearch.Page{
		Path:  doc.Path,
		Route: doc.Route,
		Title: doc.Title,
	}
	for rows.Next() {
		var seg simplesearch.Segment
		if err := rows.Scan(&seg.Name, &seg.Content); err != nil {
			return nil, err
		}
		page.Segments = append(page.Segments, seg)
	}

	return page, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*simplesearch.Document, error) {
	var doc simplesearch.Document
	var collection, createdAt string

	if err := row.Scan(&doc.ID, &collection, &doc.Path, &doc.Route, &doc.Title,
		&doc.ExcludeFromSearch, &doc.Position, &createdAt); err != nil {
		return nil, err
	}
	doc.Collection = simplesearch.Collection(collection)

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("document %s: parse created_at: %w", doc.ID, err)
	}
	doc.CreatedAt = t

	return &doc, nil
}

// appendPagination appends LIMIT and OFFSET clauses. SQLite only accepts
// OFFSET after LIMIT, so an offset without a limit uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
