package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/simplesearch"
	"github.com/fwojciec/simplesearch/mock"
	ssslog "github.com/fwojciec/simplesearch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string) ([]*simplesearch.Document, error) {
				return []*simplesearch.Document{{Title: "A"}, {Title: "B"}}, nil
			},
		}

		docs, err := ssslog.NewLoggingSearcher(inner, logger).Search(context.Background(), "hello")

		require.NoError(t, err)
		assert.Len(t, docs, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=search")
		assert.Contains(t, output, "query=hello")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string) ([]*simplesearch.Document, error) {
				return nil, errors.New("catalog unavailable")
			},
		}

		_, err := ssslog.NewLoggingSearcher(inner, logger).Search(context.Background(), "x")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"catalog unavailable\"")
	})
}
