package storage

import (
	"context"
	"encoding/json"
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, time.Hour), mr
}

func sampleTable(id string) *TableData {
	return &TableData{
		ID:    id,
		State: 2,
		Hands: [][]CardData{
			{{Suit: 0, Rank: 3}, {Suit: 3, Rank: 3}},
			{{Suit: 4, Rank: 16}},
			{},
		},
		Reserve:   []CardData{{Suit: 1, Rank: 9}},
		Landlord:  1,
		LastPlay:  []CardData{{Suit: 2, Rank: 7}},
		LastSeat:  0,
		Remaining: map[int]int{3: 2, 16: 1},
		CreatedAt: time.Now().Unix(),
	}
}

func TestRedisStore_SaveLoadDeleteTable(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	ctx := context.Background()
	data := sampleTable("T1")

	require.NoError(t, store.SaveTable(ctx, data))

	raw, err := mr.Get(tableKeyPrefix + "T1")
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &fields))
	assert.ElementsMatch(t, []string{
		"id", "state", "hands", "reserve", "landlord", "last_play",
		"last_seat", "passes", "winner", "remaining", "created_at",
	}, slices.Collect(maps.Keys(fields)))

	loaded, err := store.LoadTable(ctx, "T1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, data.ID, loaded.ID)
	assert.Equal(t, data.Hands, loaded.Hands)
	assert.Equal(t, data.LastPlay, loaded.LastPlay)
	assert.Equal(t, data.Remaining, loaded.Remaining)
	assert.Equal(t, 1, loaded.Landlord)

	require.NoError(t, store.DeleteTable(ctx, "T1"))

	loaded, err = store.LoadTable(ctx, "T1")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_SaveNil(t *testing.T) {
	t.Parallel()

	store, _ := newTestRedisStore(t)
	assert.NoError(t, store.SaveTable(context.Background(), nil))
}

func TestRedisStore_LoadCorrupted(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	require.NoError(t, mr.Set(tableKeyPrefix+"bad", "{not json"))

	_, err := store.LoadTable(context.Background(), "bad")
	assert.Error(t, err)
}

func TestRedisStore_ListTableIDs(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveTable(ctx, sampleTable("a")))
	require.NoError(t, store.SaveTable(ctx, sampleTable("b")))
	require.NoError(t, mr.Set("session:x", "other"))

	ids, err := store.ListTableIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestRedisStore_Expiration(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	ctx := context.Background()
	require.NoError(t, store.SaveTable(ctx, sampleTable("exp")))
	assert.Equal(t, time.Hour, mr.TTL(tableKeyPrefix+"exp"))

	require.NoError(t, store.SetTableExpiration(ctx, "exp", time.Minute))
	assert.Equal(t, time.Minute, mr.TTL(tableKeyPrefix+"exp"))

	mr.FastForward(2 * time.Minute)
	loaded, err := store.LoadTable(ctx, "exp")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestNewRedisStore_DefaultExpiration(t *testing.T) {
	t.Parallel()

	store := NewRedisStore(nil, 0)
	assert.Equal(t, defaultTableExpiration, store.expiration)
}
