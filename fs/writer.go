package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/simplesearch"
)

// Ensure Writer implements simplesearch.DocumentWriter at compile time.
var _ simplesearch.DocumentWriter = (*Writer)(nil)

// Writer exports documents as page files with atomic update semantics.
// Files are written to baseDir/name.tmp and moved to baseDir/name on Commit.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a new Writer.
// baseDir is the parent directory, name is the site directory name.
func NewWriter(baseDir, name string) *Writer {
	return &Writer{
		baseDir: baseDir,
		name:    name,
	}
}

func (w *Writer) tempDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

func (w *Writer) finalDir() string {
	return filepath.Join(w.baseDir, w.name)
}

// CreateDocument writes a document to the temporary site directory.
func (w *Writer) CreateDocument(ctx context.Context, doc *simplesearch.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if !filepath.IsLocal(filepath.FromSlash(doc.Path)) {
		return simplesearch.Errorf(simplesearch.EINVALID, "document path %q escapes the site directory", doc.Path)
	}

	fullPath := filepath.Join(w.tempDir(), filepath.FromSlash(doc.Path))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatDocument(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0644)
}

// Commit replaces the site directory with the written documents.
func (w *Writer) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(w.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(w.tempDir(), w.finalDir())
}

// Abort discards everything written since the last Commit.
func (w *Writer) Abort() error {
	return os.RemoveAll(w.tempDir())
}
