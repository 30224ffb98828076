package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

func newTestCache(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedisCache(mr.Addr())
	require.NoError(t, err)
	return c, mr
}

func TestSetAndGetJSON(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	in := doc{ID: "p1", Title: "Family pizza", Price: 30}
	require.NoError(t, c.SetJSON(ctx, "promo:id:p1", in, time.Hour))

	var out doc
	require.NoError(t, c.GetJSON(ctx, "promo:id:p1", &out))
	assert.Equal(t, in, out)
}

func TestGetJSONMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var out doc
	err := c.GetJSON(context.Background(), "missing", &out)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestDelete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k1", doc{ID: "p1"}, time.Hour))
	require.NoError(t, c.SetJSON(ctx, "k2", doc{ID: "p2"}, time.Hour))
	require.NoError(t, c.Delete(ctx, "k1", "k2"))

	var out doc
	assert.ErrorIs(t, c.GetJSON(ctx, "k1", &out), ErrCacheMiss)
	assert.ErrorIs(t, c.GetJSON(ctx, "k2", &out), ErrCacheMiss)
}

func TestDeleteNoKeys(t *testing.T) {
	c, _ := newTestCache(t)
	assert.NoError(t, c.Delete(context.Background()))
}

func TestEntryExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k1", doc{ID: "p1"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var out doc
	assert.ErrorIs(t, c.GetJSON(ctx, "k1", &out), ErrCacheMiss)
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	_, err := NewRedisCache("127.0.0.1:1")
	assert.Error(t, err)
}
