package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/simplesearch"
	"github.com/fwojciec/simplesearch/fs"
	"github.com/fwojciec/simplesearch/search"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	docs, err := search.NewSiteCatalog(deps.Documents).Documents(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
		return err
	}

	dir := filepath.Clean(c.Dir)
	writer := fs.NewWriter(filepath.Dir(dir), filepath.Base(dir))
	for _, doc := range docs {
		page, err := deps.Pages.FindPage(deps.Ctx, doc.Path)
		if err == nil {
			doc.Segments = page.Segments
			err = writer.CreateDocument(deps.Ctx, doc)
		}
		if err != nil {
			_ = writer.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
			return err
		}
	}

	if err := writer.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d documents to %s\n", len(docs), dir)
	return nil
}
