package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/simplesearch"
)

// Compile-time interface verification.
var (
	_ simplesearch.Catalog        = (*Catalog)(nil)
	_ simplesearch.PageRepository = (*Catalog)(nil)
)

// Catalog reads pages and posts from a site directory.
// Files are enumerated per collection in lexical path order.
type Catalog struct {
	dir string
}

// NewCatalog creates a Catalog rooted at dir.
func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Documents returns all pages followed by all posts. Segments are not
// retained; use FindPage to load content.
func (c *Catalog) Documents(ctx context.Context) ([]*simplesearch.Document, error) {
	var docs []*simplesearch.Document
	for _, collection := range simplesearch.Collections {
		part, err := c.collection(ctx, collection)
		if err != nil {
			return nil, err
		}
		docs = append(docs, part...)
	}
	return docs, nil
}

func (c *Catalog) collection(ctx context.Context, collection simplesearch.Collection) ([]*simplesearch.Document, error) {
	root := filepath.Join(c.dir, string(collection))
	if _, err := os.Stat(root); errors.Is(err, iofs.ErrNotExist) {
		return nil, nil
	}

	var docs []*simplesearch.Document
	err := filepath.WalkDir(root, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !isPageFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(c.dir, p)
		if err != nil {
			return err
		}
		doc, err := c.readDocument(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		doc.Position = len(docs)
		doc.Segments = nil
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// FindPage loads the page stored at the slash-separated path relative to the
// site root.
func (c *Catalog) FindPage(ctx context.Context, relPath string) (*simplesearch.Page, error) {
	doc, err := c.readDocument(relPath)
	if err != nil {
		return nil, err
	}
	return &simplesearch.Page{
		Path:     doc.Path,
		Route:    doc.Route,
		Title:    doc.Title,
		Segments: doc.Segments,
	}, nil
}

func (c *Catalog) readDocument(relPath string) (*simplesearch.Document, error) {
	if !filepath.IsLocal(filepath.FromSlash(relPath)) {
		return nil, simplesearch.Errorf(simplesearch.EINVALID, "page path %q escapes the site directory", relPath)
	}

	data, err := os.ReadFile(filepath.Join(c.dir, filepath.FromSlash(relPath)))
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, simplesearch.Errorf(simplesearch.ENOTFOUND, "page %q not found", relPath)
	}
	if err != nil {
		return nil, err
	}
	return ParseDocument(relPath, data)
}

func isPageFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".markdown"
}
