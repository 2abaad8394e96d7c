// Package storetest holds the behavior every comment.Storage driver must share.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-events/board/internal/core/comment"
)

// Run exercises a driver returned by newStorage. newStorage is called once per
// subtest and must return an empty store.
func Run(t *testing.T, newStorage func(t *testing.T) comment.Storage) {
	t.Helper()
	ctx := context.Background()

	t.Run("get absent key", func(t *testing.T) {
		s := newStorage(t)

		_, err := s.Get(ctx, "missing")
		assert.True(t, errors.Is(err, comment.ErrKeyNotFound), "Get error = %v, want ErrKeyNotFound", err)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStorage(t)

		require.NoError(t, s.Set(ctx, comment.DefaultKey, `[{"id":1}]`))

		got, err := s.Get(ctx, comment.DefaultKey)
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, got)
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStorage(t)

		require.NoError(t, s.Set(ctx, "k", "one"))
		require.NoError(t, s.Set(ctx, "k", "two"))

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "two", got)
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStorage(t)

		require.NoError(t, s.Set(ctx, "a", "1"))
		require.NoError(t, s.Set(ctx, "b", "2"))
		require.NoError(t, s.Remove(ctx, "a"))

		got, err := s.Get(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, "2", got)
	})

	t.Run("remove", func(t *testing.T) {
		s := newStorage(t)

		require.NoError(t, s.Set(ctx, "k", "v"))
		require.NoError(t, s.Remove(ctx, "k"))

		_, err := s.Get(ctx, "k")
		assert.True(t, errors.Is(err, comment.ErrKeyNotFound))
	})

	t.Run("remove absent key is a no-op", func(t *testing.T) {
		s := newStorage(t)

		assert.NoError(t, s.Remove(ctx, "missing"))
		assert.NoError(t, s.Remove(ctx, "missing"))
	})

	t.Run("empty value round trips", func(t *testing.T) {
		s := newStorage(t)

		require.NoError(t, s.Set(ctx, "k", ""))

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}
