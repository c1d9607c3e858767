package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client := Connect(mr.Addr())
	require.NotNil(t, client)
	defer client.Close()

	client = Connect("redis://" + mr.Addr() + "/0")
	require.NotNil(t, client)
	defer client.Close()

	assert.Nil(t, Connect(""))
	assert.Nil(t, Connect("redis://%zz"))

	mr.Close()
	assert.Nil(t, Connect(mr.Addr()))
}

func TestTokenBlacklist(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewClient(mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	bl := NewTokenBlacklist(client)

	revoked, err := bl.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.Revoke(ctx, "abc", time.Minute))
	revoked, err = bl.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, mr.Exists("blacklist:abc"))

	mr.FastForward(2 * time.Minute)
	revoked, err = bl.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenBlacklist_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewClient(mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	mr.Close()
	_, err = NewTokenBlacklist(client).IsRevoked(context.Background(), "abc")
	assert.Error(t, err)
}

func TestNewTokenBlacklist_NilClient(t *testing.T) {
	assert.Nil(t, NewTokenBlacklist(nil))
}
