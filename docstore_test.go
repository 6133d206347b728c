package intersect

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gocloud.dev/gcerrors"
)

func TestDocStoreConflict(t *testing.T) {
	ix := newTestIndex(t, "")
	doc := &Document{
		ID:      1,
		Title:   "test",
		Content: "test",
	}
	// first create
	err := ix.documents.Create(ix.ctx, doc)
	assert.Nil(t, err)
	// second create
	err = ix.documents.Create(ix.ctx, doc)
	assert.Error(t, err)
	assert.Equal(t, gcerrors.AlreadyExists, gcerrors.Code(err))
}

func TestDocStoreNotFound(t *testing.T) {
	ix := newTestIndex(t, "")
	doc := &Document{
		ID: 1,
	}
	err := ix.documents.Get(ix.ctx, doc)
	assert.Equal(t, gcerrors.NotFound, gcerrors.Code(err))
}

func TestDocStore_CloseOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ix, err := NewIndex(ctx, Option{
		DocumentUrl: "mem://",
	})
	assert.Nil(t, err)
	cancel()
	// Close is idempotent after the context closed the index
	assert.Eventually(t, func() bool {
		return ix.Close() == nil
	}, time.Second, 10*time.Millisecond)
}
