package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/simplesearch"
	main "github.com/fwojciec/simplesearch/cmd/simplesearch"
	"github.com/fwojciec/simplesearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists documents with collection, route, and title", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ simplesearch.DocumentFilter) ([]*simplesearch.Document, error) {
				return []*simplesearch.Document{
					{Collection: simplesearch.CollectionPages, Route: "", Title: "Home"},
					{Collection: simplesearch.CollectionPosts, Route: "blog/launch", Title: "Launch", ExcludeFromSearch: true},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: documents,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "pages  /  Home")
		assert.Contains(t, output, "posts  /blog/launch  Launch [no search]")
	})

	t.Run("filters by collection", func(t *testing.T) {
		t.Parallel()

		var got simplesearch.DocumentFilter
		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, filter simplesearch.DocumentFilter) ([]*simplesearch.Document, error) {
				got = filter
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

		err := (&main.ListCmd{Collection: "posts"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Collection)
		assert.Equal(t, simplesearch.CollectionPosts, *got.Collection)
		assert.Contains(t, stdout.String(), "No documents found")
	})

	t.Run("rejects unknown collection", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.ListCmd{Collection: "drafts"}).Run(deps)

		assert.Equal(t, simplesearch.EINVALID, simplesearch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "unknown collection")
	})

	t.Run("returns error when service fails", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, _ simplesearch.DocumentFilter) ([]*simplesearch.Document, error) {
				return nil, errors.New("database error")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Documents: documents,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
