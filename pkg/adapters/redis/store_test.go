package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/manualfsm/pkg/adapters/redis"
	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/ports"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ports.RunSnapshotStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "g-ttl", domain.NewGraph().Snapshot()))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, "g-ttl")

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "g-ttl")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	// Index pruning compares against wall-clock time.
	time.Sleep(1200 * time.Millisecond)

	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "my-graph", domain.NewGraph().Snapshot()))

	assert.True(t, mr.Exists("custom:app:graph:my-graph"), "expected key with custom prefix")
	assert.True(t, mr.Exists("custom:app:graphs"), "expected index with custom prefix")

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"my-graph"}, ids)
}

func TestRedisStore_DefaultPrefix(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)

	require.NoError(t, store.Ping(context.Background()))
	require.NoError(t, store.Save(context.Background(), "abc", domain.NewGraph().Snapshot()))
	assert.True(t, mr.Exists("manualfsm:graph:abc"))
	assert.True(t, mr.Exists("manualfsm:graphs"))
}

func TestRedisStore_IDsCannotReachIndex(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a1b2", domain.NewGraph().Snapshot()))

	for _, id := range []string{"index", "graphs", "s", "../graphs"} {
		require.NoError(t, store.Delete(ctx, id), id)
	}
	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1b2"}, ids, "deleting look-alike ids must not touch the index")

	for _, id := range []string{"index", "graphs"} {
		require.NoError(t, store.Save(ctx, id, domain.NewGraph().Snapshot()), id)
	}
	ids, err = store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a1b2", "index", "graphs"}, ids)

	_, err = store.Load(ctx, "index")
	assert.NoError(t, err)
}
