package main

import (
	"fmt"

	"github.com/fwojciec/simplesearch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter simplesearch.DocumentFilter
	if c.Collection != "" {
		collection := simplesearch.Collection(c.Collection)
		if !collection.Valid() {
			fmt.Fprintf(deps.Stderr, "error: unknown collection %q\n", c.Collection)
			return simplesearch.Errorf(simplesearch.EINVALID, "unknown collection %q", c.Collection)
		}
		filter.Collection = &collection
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", simplesearch.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'simplesearch import' to add a site.")
		return nil
	}

	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = "(untitled)"
		}
		if doc.ExcludeFromSearch {
			title += " [no search]"
		}
		fmt.Fprintf(deps.Stdout, "%-5s  /%s  %s\n", doc.Collection, doc.Route, title)
	}

	return nil
}
