package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"parkspot/internal/pkg/config"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const recentSearchKeyPrefix = "recent_search:"

var ErrRecentSearchUnavailable = errs.New("recent search store unavailable")

// RecentSearchStore keeps a per-user Redis list, newest first.
// Entries are stored in a normalized text form so LREM deduplicates them.
type RecentSearchStore struct {
	client redis.Cmdable
	limit  int
	ttl    time.Duration
}

func NewRecentSearchStore(client redis.Cmdable, cfg config.RecentSearchConfig) *RecentSearchStore {
	limit := cfg.Limit
	if limit <= 0 {
		limit = 10
	}
	return &RecentSearchStore{
		client: client,
		limit:  limit,
		ttl:    cfg.TTL,
	}
}

func (s *RecentSearchStore) Push(ctx context.Context, userID uuid.UUID, search queries.RecentSearch) error {
	key := recentSearchKey(userID)
	member := encodeRecentSearch(search)

	pipe := s.client.TxPipeline()
	pipe.LRem(ctx, key, 0, member)
	pipe.LPush(ctx, key, member)
	pipe.LTrim(ctx, key, 0, int64(s.limit-1))
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Mark(errs.Wrap(err, "push recent search"), ErrRecentSearchUnavailable)
	}
	return nil
}

func (s *RecentSearchStore) List(ctx context.Context, userID uuid.UUID) ([]queries.RecentSearch, error) {
	members, err := s.client.LRange(ctx, recentSearchKey(userID), 0, int64(s.limit-1)).Result()
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "list recent searches"), ErrRecentSearchUnavailable)
	}

	result := make([]queries.RecentSearch, 0, len(members))
	for _, m := range members {
		search, err := decodeRecentSearch(m)
		if err != nil {
			slog.Warn("壊れた検索履歴をスキップします", "user_id", userID, "entry", m, "error", err.Error())
			continue
		}
		result = append(result, search)
	}
	return result, nil
}

func (s *RecentSearchStore) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, recentSearchKey(userID)).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "clear recent searches"), ErrRecentSearchUnavailable)
	}
	return nil
}

func recentSearchKey(userID uuid.UUID) string {
	return recentSearchKeyPrefix + userID.String()
}

func encodeRecentSearch(s queries.RecentSearch) string {
	return fmt.Sprintf("%.5f,%.5f,%.2f", s.Lat, s.Lng, s.RadiusKm)
}

func decodeRecentSearch(member string) (queries.RecentSearch, error) {
	parts := strings.Split(member, ",")
	if len(parts) != 3 {
		return queries.RecentSearch{}, fmt.Errorf("expected 3 fields, got %d", len(parts))
	}
	values := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return queries.RecentSearch{}, err
		}
		values[i] = v
	}
	return queries.RecentSearch{Lat: values[0], Lng: values[1], RadiusKm: values[2]}, nil
}
