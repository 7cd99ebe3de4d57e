//go:build integration

package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestStore_Contract(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()

	tab1 := New(client, TabPrefix("hm:", "one"), time.Minute)
	tab2 := New(client, TabPrefix("hm:", "two"), time.Minute)

	v, err := tab1.Get(ctx, "sessionEmail")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, tab1.Set(ctx, "sessionEmail", []byte("ann@x.com")))
	v, err = tab1.Get(ctx, "sessionEmail")
	require.NoError(t, err)
	assert.Equal(t, []byte("ann@x.com"), v)

	v, err = tab2.Get(ctx, "sessionEmail")
	require.NoError(t, err)
	assert.Nil(t, v, "tabs must not see each other's keys")

	ttl, err := client.TTL(ctx, "hm:tab:one:sessionEmail").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	m, err := tab1.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"sessionEmail": []byte("ann@x.com")}, m)

	require.NoError(t, tab1.Delete(ctx, "sessionEmail"))
	require.NoError(t, tab1.Delete(ctx, "sessionEmail"))
	v, err = tab1.Get(ctx, "sessionEmail")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, tab2.Set(ctx, "a", []byte("1")))
	require.NoError(t, tab2.Set(ctx, "b", []byte("2")))
	require.NoError(t, tab2.Clear(ctx))
	m, err = tab2.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestStore_KeysExpire(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()

	s := New(client, TabPrefix("hm:", "short"), time.Second)
	require.NoError(t, s.Set(ctx, "sessionEmail", []byte("ann@x.com")))

	require.Eventually(t, func() bool {
		v, err := s.Get(ctx, "sessionEmail")
		return err == nil && v == nil
	}, 5*time.Second, 100*time.Millisecond)
}
