package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/simplesearch"
	"github.com/fwojciec/simplesearch/mock"
	"github.com/fwojciec/simplesearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSiteCatalog(t *testing.T) {
	t.Parallel()

	t.Run("lists pages before posts", func(t *testing.T) {
		t.Parallel()

		var requested []simplesearch.Collection
		svc := &mock.DocumentService{
			FindDocumentsFn: func(ctx context.Context, filter simplesearch.DocumentFilter) ([]*simplesearch.Document, error) {
				require.NotNil(t, filter.Collection)
				requested = append(requested, *filter.Collection)
				return []*simplesearch.Document{{Path: string(*filter.Collection) + "/a.md"}}, nil
			},
		}

		docs, err := search.NewSiteCatalog(svc).Documents(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []simplesearch.Collection{simplesearch.CollectionPages, simplesearch.CollectionPosts}, requested)
		require.Len(t, docs, 2)
		assert.Equal(t, "pages/a.md", docs[0].Path)
		assert.Equal(t, "posts/a.md", docs[1].Path)
	})

	t.Run("propagates service error", func(t *testing.T) {
		t.Parallel()

		svc := &mock.DocumentService{
			FindDocumentsFn: func(ctx context.Context, filter simplesearch.DocumentFilter) ([]*simplesearch.Document, error) {
				return nil, errors.New("locked")
			},
		}

		_, err := search.NewSiteCatalog(svc).Documents(context.Background())
		assert.EqualError(t, err, "find pages: locked")
	})
}
