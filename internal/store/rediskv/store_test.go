package rediskv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-events/board/internal/core/comment"
	"github.com/smart-events/board/internal/store/storetest"
)

func newMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return mr
}

func TestStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) comment.Storage {
		mr := newMiniredis(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		return New(client)
	})
}

func TestDial(t *testing.T) {
	mr := newMiniredis(t)
	ctx := context.Background()

	s, err := Dial(ctx, Options{Addr: mr.Addr()})
	require.NoError(t, err)
	defer s.Close() //nolint:errcheck

	require.NoError(t, s.Set(ctx, comment.DefaultKey, "[]"))

	got, err := mr.Get(comment.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestDial_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = Dial(context.Background(), Options{Addr: addr})
	assert.Error(t, err)
}

func TestStore_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close() //nolint:errcheck

	s := New(client)
	mr.Close()

	err = s.Set(context.Background(), "k", "v")
	require.Error(t, err)
	assert.NotErrorIs(t, err, comment.ErrKeyNotFound)
}
