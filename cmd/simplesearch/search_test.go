package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/simplesearch"
	main "github.com/fwojciec/simplesearch/cmd/simplesearch"
	"github.com/fwojciec/simplesearch/mock"
	"github.com/fwojciec/simplesearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("blank query prints no results without reading documents", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ simplesearch.DocumentFilter) ([]*simplesearch.Document, error) {
				t.Fatal("catalog should not be enumerated for a blank query")
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: documents,
		}

		err := (&main.SearchCmd{Query: "   "}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No results")
	})

	t.Run("prints numbered results in catalog order", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter simplesearch.DocumentFilter) ([]*simplesearch.Document, error) {
				if *filter.Collection == simplesearch.CollectionPages {
					return []*simplesearch.Document{{Path: "pages/a.md", Route: "a", Title: "Gopher A"}}, nil
				}
				return []*simplesearch.Document{{Path: "posts/b.md", Route: "blog/b", Title: "Gopher B"}}, nil
			},
		}
		bodies := map[string]string{
			"pages/a.md": "Gophers dig tunnels.",
			"posts/b.md": "A GOPHER wrote this post.",
		}
		pages := &mock.PageRepository{
			FindPageFn: func(_ context.Context, path string) (*simplesearch.Page, error) {
				return &simplesearch.Page{
					Path:     path,
					Segments: []simplesearch.Segment{{Name: "default", Content: bodies[path]}},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: documents,
			Pages:     pages,
			Config:    search.NewConfig(true, false),
		}

		err := (&main.SearchCmd{Query: "gopher"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "  1. Gopher A\n     a\n  2. Gopher B\n     blog/b\n", stdout.String())
	})
}
