package simplesearch_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/simplesearch"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := simplesearch.Errorf(simplesearch.ENOTFOUND, "page %q not found", "about")

	assert.Equal(t, simplesearch.ENOTFOUND, simplesearch.ErrorCode(err))
	assert.Equal(t, "page \"about\" not found", simplesearch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, simplesearch.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, simplesearch.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load page: %w", simplesearch.Errorf(simplesearch.ENOTFOUND, "page not found"))

	assert.Equal(t, simplesearch.ENOTFOUND, simplesearch.ErrorCode(err))
	assert.Equal(t, "page not found", simplesearch.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("disk on fire")

	assert.Equal(t, simplesearch.EINTERNAL, simplesearch.ErrorCode(err))
	assert.Equal(t, "Internal error.", simplesearch.ErrorMessage(err))
}
