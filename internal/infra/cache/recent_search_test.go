//go:build unit

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RecentSearchStore, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	t.Cleanup(func() { _ = client.Close() })
	store := NewRecentSearchStore(client, config.RecentSearchConfig{Limit: 3, TTL: time.Hour})
	return store, mock
}

func TestRecentSearchStore_Push(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := recentSearchKey(userID)
	search := queries.RecentSearch{Lat: 35.6812, Lng: 139.7671, RadiusKm: 2}
	member := "35.68120,139.76710,2.00"

	t.Run("重複を削除して先頭に追加し上限で切り詰める", func(t *testing.T) {
		store, mock := newTestStore(t)

		mock.ExpectTxPipeline()
		mock.ExpectLRem(key, 0, member).SetVal(1)
		mock.ExpectLPush(key, member).SetVal(3)
		mock.ExpectLTrim(key, 0, 2).SetVal("OK")
		mock.ExpectExpire(key, time.Hour).SetVal(true)
		mock.ExpectTxPipelineExec()

		require.NoError(t, store.Push(ctx, userID, search))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redisエラーはマークされて返る", func(t *testing.T) {
		store, mock := newTestStore(t)

		mock.ExpectTxPipeline()
		mock.ExpectLRem(key, 0, member).SetErr(errors.New("connection refused"))

		err := store.Push(ctx, userID, search)
		require.Error(t, err)
		assert.True(t, errs.Is(err, ErrRecentSearchUnavailable))
	})
}

func TestRecentSearchStore_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := recentSearchKey(userID)

	t.Run("新しい順に返し壊れたエントリはスキップする", func(t *testing.T) {
		store, mock := newTestStore(t)
		mock.ExpectLRange(key, 0, 2).SetVal([]string{
			"35.68120,139.76710,2.00",
			"broken",
			"34.70250,135.49590,5.50",
		})

		got, err := store.List(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []queries.RecentSearch{
			{Lat: 35.6812, Lng: 139.7671, RadiusKm: 2},
			{Lat: 34.7025, Lng: 135.4959, RadiusKm: 5.5},
		}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("履歴がない場合は空スライス", func(t *testing.T) {
		store, mock := newTestStore(t)
		mock.ExpectLRange(key, 0, 2).SetVal([]string{})

		got, err := store.List(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestRecentSearchStore_Clear(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	store, mock := newTestStore(t)

	mock.ExpectDel(recentSearchKey(userID)).SetVal(1)

	require.NoError(t, store.Clear(ctx, userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
