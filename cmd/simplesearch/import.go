package main

import (
	"fmt"

	"github.com/fwojciec/simplesearch"
	"github.com/fwojciec/simplesearch/fs"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	site := fs.NewCatalog(c.Dir)
	docs, err := site.Documents(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
		return err
	}

	imported := 0
	for _, doc := range docs {
		page, err := site.FindPage(deps.Ctx, doc.Path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
			return err
		}
		doc.Segments = page.Segments

		// Force mode: delete existing document first
		if c.Force {
			if err := deleteByPath(deps, doc.Path); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
				return err
			}
		}

		if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
			if simplesearch.ErrorCode(err) == simplesearch.ECONFLICT {
				fmt.Fprintf(deps.Stderr, "error: %s. Use --force to replace it.\n", simplesearch.ErrorMessage(err))
			} else {
				fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
			}
			return err
		}
		imported++
	}

	fmt.Fprintf(deps.Stdout, "Imported %d documents from %s\n", imported, c.Dir)
	return nil
}

func deleteByPath(deps *Dependencies, path string) error {
	existing, err := deps.Documents.FindDocuments(deps.Ctx, simplesearch.DocumentFilter{Path: &path})
	if err != nil {
		return err
	}
	for _, doc := range existing {
		if err := deps.Documents.DeleteDocument(deps.Ctx, doc.ID); err != nil {
			return err
		}
	}
	return nil
}
