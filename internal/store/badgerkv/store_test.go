package badgerkv

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-events/board/internal/core/comment"
	"github.com/smart-events/board/internal/store/storetest"
)

func TestStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) comment.Storage {
		db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		return New(db)
	})
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, comment.DefaultKey, "[]"))
	require.NoError(t, s.Close())

	s, err = Open(dir, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close() //nolint:errcheck

	got, err := s.Get(ctx, comment.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestOpen_InMemory(t *testing.T) {
	s, err := Open("", zerolog.Nop())
	require.NoError(t, err)
	defer s.Close() //nolint:errcheck

	_, err = s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, comment.ErrKeyNotFound)
}
